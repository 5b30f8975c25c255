package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/liveform/pkg/validator"
)

func TestErrors_Add(t *testing.T) {
	t.Run("creates the sequence on first add", func(t *testing.T) {
		errs := validator.NewErrors()
		errs.Add("name", "can't be blank")

		assert.True(t, errs.Has("name"))
		assert.Equal(t, []string{"can't be blank"}, errs.Messages("name"))
	})

	t.Run("appends in order for the same attribute", func(t *testing.T) {
		errs := validator.NewErrors()
		errs.Add("password", "too short")
		errs.Add("password", "missing special character")

		assert.Equal(t, []string{"too short", "missing special character"}, errs.Messages("password"))
	})

	t.Run("tracks attributes in first-add order", func(t *testing.T) {
		errs := validator.NewErrors()
		errs.Add("email", "is invalid")
		errs.Add("name", "can't be blank")
		errs.Add("email", "is taken")

		assert.Equal(t, []string{"email", "name"}, errs.Attributes())
	})
}

func TestErrors_Remove(t *testing.T) {
	t.Run("clears only the given attribute", func(t *testing.T) {
		errs := validator.NewErrors()
		errs.Add("name", "can't be blank")
		errs.Add("email", "is invalid")

		errs.Remove("name")

		assert.False(t, errs.Has("name"))
		assert.Empty(t, errs.Messages("name"))
		assert.True(t, errs.Has("email"))
	})

	t.Run("removing an absent attribute is a no-op", func(t *testing.T) {
		errs := validator.NewErrors()
		errs.Add("name", "can't be blank")

		errs.Remove("missing")
		assert.Equal(t, 1, errs.Len())
	})
}

func TestErrors_Clear(t *testing.T) {
	errs := validator.NewErrors()
	errs.Add("name", "can't be blank")
	errs.Add("email", "is invalid")

	errs.Clear()

	assert.True(t, errs.IsEmpty())
	assert.Zero(t, errs.Len())
	assert.Empty(t, errs.Attributes())
}

func TestErrors_Len(t *testing.T) {
	t.Run("zero for an empty collection", func(t *testing.T) {
		errs := validator.NewErrors()
		assert.Zero(t, errs.Len())
	})

	t.Run("sums message counts across attributes", func(t *testing.T) {
		errs := validator.NewErrors()
		errs.Add("name", "can't be blank")
		errs.Add("password", "too short")
		errs.Add("password", "missing special character")

		assert.Equal(t, 3, errs.Len())
	})

	t.Run("length zero iff empty after removals", func(t *testing.T) {
		errs := validator.NewErrors()
		errs.Add("name", "can't be blank")
		errs.Remove("name")

		assert.Zero(t, errs.Len())
		assert.True(t, errs.IsEmpty())
	})
}

func TestErrors_Error(t *testing.T) {
	t.Run("default message when empty", func(t *testing.T) {
		errs := validator.NewErrors()
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("renders every attribute and message", func(t *testing.T) {
		errs := validator.NewErrors()
		errs.Add("name", "can't be blank")
		errs.Add("amount", "must be shorter than 10 characters")

		msg := errs.Error()
		assert.Contains(t, msg, "validation failed:")
		assert.Contains(t, msg, "name: can't be blank")
		assert.Contains(t, msg, "amount: must be shorter than 10 characters")
	})

	t.Run("satisfies the error interface", func(t *testing.T) {
		var err error = validator.NewErrors()
		require.NotNil(t, err)
	})
}

func TestErrors_FullMessages(t *testing.T) {
	t.Run("humanizes camel-cased attributes", func(t *testing.T) {
		errs := validator.NewErrors()
		errs.Add("firstName", "can't be blank")

		assert.Equal(t, []string{"First name can't be blank"}, errs.FullMessages())
	})

	t.Run("keeps add order across attributes", func(t *testing.T) {
		errs := validator.NewErrors()
		errs.Add("name", "can't be blank")
		errs.Add("name", "is too plain")
		errs.Add("amount", "must be longer than 3 characters")

		assert.Equal(t, []string{
			"Name can't be blank",
			"Name is too plain",
			"Amount must be longer than 3 characters",
		}, errs.FullMessages())
	})

	t.Run("empty collection yields no messages", func(t *testing.T) {
		errs := validator.NewErrors()
		assert.Empty(t, errs.FullMessages())
	})
}

func TestErrors_Subscribe(t *testing.T) {
	t.Run("notifies on add, remove and clear", func(t *testing.T) {
		errs := validator.NewErrors()
		calls := 0
		errs.Subscribe(func() { calls++ })

		errs.Add("name", "can't be blank")
		errs.Remove("name")
		errs.Add("name", "can't be blank")
		errs.Clear()

		assert.Equal(t, 4, calls)
	})

	t.Run("does not notify for no-op mutations", func(t *testing.T) {
		errs := validator.NewErrors()
		calls := 0
		errs.Subscribe(func() { calls++ })

		errs.Remove("missing")
		errs.Clear()

		assert.Zero(t, calls)
	})

	t.Run("nil subscribers are ignored", func(t *testing.T) {
		errs := validator.NewErrors()
		errs.Subscribe(nil)
		errs.Add("name", "can't be blank") // must not panic
	})

	t.Run("messages returns a copy", func(t *testing.T) {
		errs := validator.NewErrors()
		errs.Add("name", "can't be blank")

		got := errs.Messages("name")
		got[0] = "mutated"

		assert.Equal(t, []string{"can't be blank"}, errs.Messages("name"))
	})
}
