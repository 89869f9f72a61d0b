package domain

import "time"

type ProductStatus string

const (
	ProductStatusDraft     ProductStatus = "draft"
	ProductStatusPublished ProductStatus = "published"
	ProductStatusArchived  ProductStatus = "archived"
	ProductStatusDeleted   ProductStatus = "deleted"
)

type ProductType string

const (
	ProductTypePhysical ProductType = "physical"
	ProductTypeDigital  ProductType = "digital"
	ProductTypeService  ProductType = "service"
)

// Product is a read-only snapshot of a store product as served to
// storefronts. The cart engine never mutates it.
type Product struct {
	ID               string                 `json:"id"`
	Slug             string                 `json:"slug"`
	Name             string                 `json:"name"`
	StoreID          string                 `json:"storeId"`
	ShippingMethodID *string                `json:"shippingMethodId,omitempty"`
	ShippingPriceID  *string                `json:"shippingPriceId,omitempty"`
	Title            *string                `json:"title,omitempty"`
	Description      *string                `json:"description,omitempty"`
	SKU              *string                `json:"sku,omitempty"`
	Price            float64                `json:"price"`
	Cost             *float64               `json:"cost,omitempty"`
	Discount         *float64               `json:"discount,omitempty"`
	Stock            *int                   `json:"stock,omitempty"`
	Sold             int                    `json:"sold"`
	Variant          *ProductVariant        `json:"variant,omitempty"`
	Offers           []ProductOffer         `json:"offers,omitempty"`
	Addons           []ProductAddon         `json:"addons,omitempty"`
	Metadata         map[string]interface{} `json:"metadata,omitempty"`
	Status           ProductStatus          `json:"status"`
	Type             ProductType            `json:"type"`
	CreatedAt        time.Time              `json:"createdAt"`
	UpdatedAt        time.Time              `json:"updatedAt"`
}

// ProductVariant is one level of the nested option tree. An option may carry
// a child variant, so a path like "red/large" walks two levels deep.
type ProductVariant struct {
	Name     string                 `json:"name"`
	Options  []ProductVariantOption `json:"options"`
	Required bool                   `json:"required,omitempty"`
}

type ProductVariantOption struct {
	Name     string          `json:"name"`
	SKU      *string         `json:"sku,omitempty"`
	Price    *float64        `json:"price,omitempty"`
	Discount *float64        `json:"discount,omitempty"`
	Stock    *int            `json:"stock,omitempty"`
	Sold     *int            `json:"sold,omitempty"`
	Child    *ProductVariant `json:"child,omitempty"`
	Hint     *string         `json:"hint,omitempty"`
	Hidden   bool            `json:"hidden,omitempty"`
}

// ProductAddon is an optional extra sold alongside the product, matched by
// title from cart line selections.
type ProductAddon struct {
	Title    string   `json:"title"`
	Subtitle *string  `json:"subtitle,omitempty"`
	PhotoURL *string  `json:"photoUrl,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Stock    *int     `json:"stock,omitempty"`
	Min      *int     `json:"min,omitempty"`
	Max      *int     `json:"max,omitempty"`
}

// ProductOffer is a named pricing override. A fixed Price replaces the
// variant-resolved price outright; quantity bounds clamp the line quantity.
type ProductOffer struct {
	Code         string   `json:"code"`
	Title        string   `json:"title"`
	Subtitle     *string  `json:"subtitle,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	MinQuantity  *int     `json:"minQuantity,omitempty"`
	MaxQuantity  *int     `json:"maxQuantity,omitempty"`
	FreeShipping bool     `json:"freeShipping,omitempty"`
}
