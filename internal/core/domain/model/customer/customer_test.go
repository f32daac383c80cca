package customer_test

import (
	"testing"

	"dinner/internal/core/domain/model/customer"
	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("1 Main St", "Springfield", "IL", "62701", "US")
	require.NoError(t, err)
	return addr
}

func TestNewCustomer(t *testing.T) {
	t.Run("should create active customer with trimmed fields", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := customer.NewCustomer(id, "  Ada Lovelace ", " ada@example.com ", " 5551234567 ", validAddress(t))

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Ada Lovelace", c.Name())
		assert.Equal(t, "ada@example.com", c.Email())
		assert.Equal(t, "5551234567", c.PhoneNumber())
		assert.Equal(t, customer.Active, c.Status())
		assert.True(t, c.IsActive())
	})

	t.Run("should reject short phone number", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "Ada", "ada@example.com", "12345", validAddress(t))

		require.Error(t, err)
		assert.True(t, errs.IsValidationError(err))
		assert.Contains(t, err.Error(), "phoneNumber")
	})

	t.Run("should reject malformed fields", func(t *testing.T) {
		tests := map[string]struct {
			name, email, phone string
			field              string
		}{
			"blank name":             {name: "   ", email: "a@b.io", phone: "5551234567", field: "name"},
			"email without at":       {name: "Ada", email: "ada.example.com", phone: "5551234567", field: "email"},
			"email dot before at":    {name: "Ada", email: "ada.l@example", phone: "5551234567", field: "email"},
			"phone with separators":  {name: "Ada", email: "a@b.io", phone: "555-123-4567", field: "phoneNumber"},
			"phone too long":         {name: "Ada", email: "a@b.io", phone: "1234567890123456", field: "phoneNumber"},
			"phone with plus prefix": {name: "Ada", email: "a@b.io", phone: "+15551234567", field: "phoneNumber"},
		}

		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := customer.NewCustomer(kernel.NewUUID(), tt.name, tt.email, tt.phone, validAddress(t))

				require.Error(t, err)
				assert.True(t, errs.IsValidationError(err))
				assert.Contains(t, err.Error(), tt.field)
			})
		}
	})

	t.Run("should report all failures together", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.UUID{}, "", "nope", "1", kernel.Address{})

		require.Error(t, err)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		for _, field := range []string{"name", "email", "phoneNumber", "deliveryAddress"} {
			assert.Contains(t, err.Error(), field)
		}
	})
}

func TestCustomer_Setters(t *testing.T) {
	c, err := customer.NewCustomer(kernel.NewUUID(), "Ada", "ada@example.com", "5551234567", validAddress(t))
	require.NoError(t, err)

	t.Run("failed update leaves customer unchanged", func(t *testing.T) {
		require.Error(t, c.SetEmail("broken"))
		require.Error(t, c.SetPhoneNumber("12345"))
		require.Error(t, c.SetName(" "))
		require.Error(t, c.SetDeliveryAddress(kernel.Address{}))

		assert.Equal(t, "ada@example.com", c.Email())
		assert.Equal(t, "5551234567", c.PhoneNumber())
		assert.Equal(t, "Ada", c.Name())
		assert.True(t, c.DeliveryAddress().IsEqual(validAddress(t)))
	})

	t.Run("valid update is applied", func(t *testing.T) {
		require.NoError(t, c.SetEmail("countess@lovelace.org"))
		require.NoError(t, c.SetPhoneNumber("442071234567"))

		assert.Equal(t, "countess@lovelace.org", c.Email())
		assert.Equal(t, "442071234567", c.PhoneNumber())
	})
}

func TestCustomer_StatusChanges(t *testing.T) {
	c, err := customer.NewCustomer(kernel.NewUUID(), "Ada", "ada@example.com", "5551234567", validAddress(t))
	require.NoError(t, err)

	c.Deactivate()
	assert.Equal(t, customer.Inactive, c.Status())
	assert.False(t, c.IsActive())

	c.Suspend()
	assert.Equal(t, customer.Suspended, c.Status())

	c.Activate()
	assert.True(t, c.IsActive())
}

func TestCustomer_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	a, err := customer.NewCustomer(id, "Ada", "ada@example.com", "5551234567", validAddress(t))
	require.NoError(t, err)
	b, err := customer.NewCustomer(id, "Someone Else", "else@example.com", "5559876543", validAddress(t))
	require.NoError(t, err)
	c, err := customer.NewCustomer(kernel.NewUUID(), "Ada", "ada@example.com", "5551234567", validAddress(t))
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}

func TestRestoreCustomer(t *testing.T) {
	t.Run("should keep persisted status", func(t *testing.T) {
		c, err := customer.RestoreCustomer(
			kernel.NewUUID(), "Ada", "ada@example.com", "5551234567", validAddress(t), customer.Suspended)

		require.NoError(t, err)
		assert.Equal(t, customer.Suspended, c.Status())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := customer.RestoreCustomer(
			kernel.NewUUID(), "Ada", "ada@example.com", "5551234567", validAddress(t), customer.Unknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCustomer_Validate(t *testing.T) {
	var nilCustomer *customer.Customer

	require.ErrorIs(t, nilCustomer.Validate(), customer.ErrCustomerIsNotConstructed)
	require.ErrorIs(t, (&customer.Customer{}).Validate(), customer.ErrCustomerIsNotConstructed)
}

func TestParseStatus(t *testing.T) {
	for _, s := range []customer.Status{customer.Active, customer.Inactive, customer.Suspended} {
		parsed, err := customer.ParseStatus(s.String())

		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := customer.ParseStatus("Unknown")
	require.Error(t, err)
}
