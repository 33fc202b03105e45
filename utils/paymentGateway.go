package utils

import (
	"encoding/json"
	"fmt"
	"log"

	"elearn/config"

	"github.com/go-resty/resty/v2"
)

// GetCardToken exchanges raw card details for a single-use token at the
// payment gateway. The card number never touches our storage.
func GetCardToken(cardNumber, cvv, expMonth, expYear string) (string, error) {
	client := resty.New()

	url := fmt.Sprintf("%stoken?client_key=%s&card_number=%s&card_cvv=%s&card_exp_month=%s&card_exp_year=%s",
		config.AppConfig.PaymentApiURL, config.AppConfig.PaymentClientKey,
		cardNumber, cvv, expMonth, expYear)

	resp, err := client.R().Get(url)
	if err != nil {
		log.Printf("[PAYMENT-GATEWAY] Failed to get card token: %v", err)
		return "", err
	}
	if resp.StatusCode() != 200 {
		log.Printf("[PAYMENT-GATEWAY] Card token request failed: %s", resp.String())
		return "", fmt.Errorf("card token request failed with status %d", resp.StatusCode())
	}

	var tokenResp struct {
		TokenID string `json:"token_id"`
	}
	if err := json.Unmarshal(resp.Body(), &tokenResp); err != nil {
		log.Printf("[PAYMENT-GATEWAY] Failed to parse token response: %v", err)
		return "", err
	}
	if tokenResp.TokenID == "" {
		return "", fmt.Errorf("payment gateway returned no token")
	}

	return tokenResp.TokenID, nil
}

// ChargeCard charges a tokenized card and returns the gateway transaction
// status. Called only after the premium gate has passed.
func ChargeCard(tokenID string, amount int, orderID string) (string, error) {
	client := resty.New()

	payload := map[string]interface{}{
		"payment_type": "credit_card",
		"transaction_details": map[string]interface{}{
			"order_id":     orderID,
			"gross_amount": amount,
		},
		"credit_card": map[string]interface{}{
			"token_id": tokenID,
		},
	}

	resp, err := client.R().
		SetBasicAuth(config.AppConfig.PaymentServerKey, "").
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(config.AppConfig.PaymentApiURL + "charge")
	if err != nil {
		log.Printf("[PAYMENT-GATEWAY] Charge request failed: %v", err)
		return "", err
	}

	var chargeResp struct {
		TransactionStatus string `json:"transaction_status"`
		StatusMessage     string `json:"status_message"`
	}
	if err := json.Unmarshal(resp.Body(), &chargeResp); err != nil {
		log.Printf("[PAYMENT-GATEWAY] Failed to parse charge response: %v", err)
		return "", err
	}

	if resp.StatusCode() != 200 && resp.StatusCode() != 201 {
		log.Printf("[PAYMENT-GATEWAY] Charge rejected: %s", chargeResp.StatusMessage)
		return "", fmt.Errorf("charge rejected with status %d", resp.StatusCode())
	}

	return chargeResp.TransactionStatus, nil
}
