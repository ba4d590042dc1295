package model

import "time"

type PurchaseHistory struct {
	PurchaseId   string    `json:"purchaseId"`
	PurchaseDate time.Time `json:"purchaseDate"`
	Items        Basket    `json:"items"`
}
