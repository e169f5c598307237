package models

const (
	OfferListSelling = "selling"
	OfferListBuying  = "buying"
)

// ProductStat carries aggregate market figures for a product; prices are in base currency.
type ProductStat struct {
	LowestListPrice   float64 `json:"lowest_list_price"`
	HighestOfferPrice float64 `json:"highest_offer_price"`
	LastSalePrice     float64 `json:"last_sale_price"`
}

// Product is the subset of product data the pricing flows need.
type Product struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	SKU   string `json:"sku"`
	Class string `json:"class"`
}

// OfferList is a seller list ("selling") or buyer offer ("buying").
type OfferList struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"user_id"`
	ProductID  int64   `json:"product_id"`
	Type       string  `json:"type"`
	Status     string  `json:"status"`
	Size       string  `json:"size"`
	LocalSize  string  `json:"local_size"`
	Price      float64 `json:"price"`
	LocalPrice float64 `json:"local_price"`
	IsInstant  bool    `json:"is_instant"`
	Expiration int     `json:"expiration"`
	CreatedAt  string  `json:"created_at"`

	Product     Product      `json:"product"`
	ProductStat *ProductStat `json:"product_stat,omitempty"`
	Currency    Currency     `json:"currency"`
}
