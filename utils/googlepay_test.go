package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGooglePayIntent(t *testing.T) {
	intent := BuildGooglePayIntent(499, "merchant-1", "StudyNotion", "example", "INR")

	assert.Equal(t, 2, intent.APIVersion)
	assert.Equal(t, 0, intent.APIVersionMinor)

	require.Len(t, intent.AllowedPaymentMethods, 1)
	method := intent.AllowedPaymentMethods[0]
	assert.Equal(t, "CARD", method.Type)
	assert.Equal(t, []string{"PAN_ONLY", "CRYPTOGRAM_3DS"}, method.Parameters.AllowedAuthMethods)
	assert.Equal(t, []string{"MASTERCARD", "VISA"}, method.Parameters.AllowedCardNetworks)
	assert.Equal(t, "PAYMENT_GATEWAY", method.TokenizationSpecification.Type)
	assert.Equal(t, "example", method.TokenizationSpecification.Parameters["gateway"])
	assert.Equal(t, "merchant-1", method.TokenizationSpecification.Parameters["gatewayMerchantId"])

	assert.Equal(t, "merchant-1", intent.MerchantInfo.MerchantID)
	assert.Equal(t, "StudyNotion", intent.MerchantInfo.MerchantName)

	assert.Equal(t, "FINAL", intent.TransactionInfo.TotalPriceStatus)
	assert.Equal(t, "499", intent.TransactionInfo.TotalPrice)
	assert.Equal(t, "INR", intent.TransactionInfo.CurrencyCode)
}

func TestGooglePayIntentJSONShape(t *testing.T) {
	intent := BuildGooglePayIntent(1299, "merchant-1", "StudyNotion", "example", "INR")

	raw, err := json.Marshal(intent)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	// The wallet widget expects these exact top-level keys
	assert.Contains(t, decoded, "apiVersion")
	assert.Contains(t, decoded, "apiVersionMinor")
	assert.Contains(t, decoded, "allowedPaymentMethods")
	assert.Contains(t, decoded, "merchantInfo")
	assert.Contains(t, decoded, "transactionInfo")
}
