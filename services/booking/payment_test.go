package booking

import (
	"testing"

	"rentride/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateRequest(t *testing.T) {
	base := models.PaymentRequest{
		RenterID: "renter-1",
		Amount:   1000,
		Currency: "php",
		Method:   "card",
	}
	assert.NoError(t, validateRequest(base))

	bad := base
	bad.Amount = 0
	assert.Error(t, validateRequest(bad))

	bad = base
	bad.RenterID = ""
	assert.Error(t, validateRequest(bad))

	bad = base
	bad.Currency = ""
	assert.Error(t, validateRequest(bad))

	bad = base
	bad.Method = "gcash"
	assert.Error(t, validateRequest(bad))

	ok := base
	ok.Method = "cash"
	assert.NoError(t, validateRequest(ok))
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(100000), toMinorUnits(1000))
	assert.Equal(t, int64(123456), toMinorUnits(1234.56))
	assert.Equal(t, int64(1999), toMinorUnits(19.99))
	assert.Equal(t, int64(0), toMinorUnits(0))
}
