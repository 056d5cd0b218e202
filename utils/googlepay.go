package utils

import "strconv"

// Google Pay PaymentDataRequest shapes. These mirror the JSON the wallet
// widget consumes; the server only shapes data here, it never talks to the
// payment network itself.

type CardParameters struct {
	AllowedAuthMethods  []string `json:"allowedAuthMethods"`
	AllowedCardNetworks []string `json:"allowedCardNetworks"`
}

type TokenizationSpecification struct {
	Type       string            `json:"type"`
	Parameters map[string]string `json:"parameters"`
}

type AllowedPaymentMethod struct {
	Type                      string                    `json:"type"`
	Parameters                CardParameters            `json:"parameters"`
	TokenizationSpecification TokenizationSpecification `json:"tokenizationSpecification"`
}

type MerchantInfo struct {
	MerchantID   string `json:"merchantId"`
	MerchantName string `json:"merchantName"`
}

type TransactionInfo struct {
	TotalPriceStatus string `json:"totalPriceStatus"`
	TotalPrice       string `json:"totalPrice"`
	CurrencyCode     string `json:"currencyCode"`
}

type GooglePayIntent struct {
	APIVersion            int                    `json:"apiVersion"`
	APIVersionMinor       int                    `json:"apiVersionMinor"`
	AllowedPaymentMethods []AllowedPaymentMethod `json:"allowedPaymentMethods"`
	MerchantInfo          MerchantInfo           `json:"merchantInfo"`
	TransactionInfo       TransactionInfo        `json:"transactionInfo"`
}

// BuildGooglePayIntent builds the wallet configuration descriptor for a
// card payment of the given amount.
func BuildGooglePayIntent(price uint, merchantID, merchantName, gateway, currencyCode string) GooglePayIntent {
	return GooglePayIntent{
		APIVersion:      2,
		APIVersionMinor: 0,
		AllowedPaymentMethods: []AllowedPaymentMethod{
			{
				Type: "CARD",
				Parameters: CardParameters{
					AllowedAuthMethods:  []string{"PAN_ONLY", "CRYPTOGRAM_3DS"},
					AllowedCardNetworks: []string{"MASTERCARD", "VISA"},
				},
				TokenizationSpecification: TokenizationSpecification{
					Type: "PAYMENT_GATEWAY",
					Parameters: map[string]string{
						"gateway":           gateway,
						"gatewayMerchantId": merchantID,
					},
				},
			},
		},
		MerchantInfo: MerchantInfo{
			MerchantID:   merchantID,
			MerchantName: merchantName,
		},
		TransactionInfo: TransactionInfo{
			TotalPriceStatus: "FINAL",
			TotalPrice:       strconv.FormatUint(uint64(price), 10),
			CurrencyCode:     currencyCode,
		},
	}
}
