package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feeefapp/feeef-go/internal/cart"
	"github.com/feeefapp/feeef-go/internal/domain"
)

// quoteRequest is a full cart snapshot: committed lines, an optional draft
// line, the delivery address, and whichever shipping sources the caller has
// already resolved by id.
type quoteRequest struct {
	Lines          []cart.Line            `json:"lines"`
	CurrentItem    *cart.Line             `json:"currentItem,omitempty"`
	Address        *cart.Address          `json:"address,omitempty"`
	Store          *domain.Store          `json:"store,omitempty"`
	ShippingMethod *domain.ShippingMethod `json:"shippingMethod,omitempty"`
	ShippingPrice  *domain.ShippingPrice  `json:"shippingPrice,omitempty"`
}

type quoteLine struct {
	Key      string  `json:"key"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

type quoteResponse struct {
	Lines                  []quoteLine         `json:"lines"`
	Subtotal               float64             `json:"subtotal"`
	ShippingPrice          float64             `json:"shippingPrice"`
	AvailableShippingTypes []cart.ShippingType `json:"availableShippingTypes"`
	Total                  float64             `json:"total"`
}

// quoteHandler prices a submitted cart snapshot. The handler is stateless:
// every request builds a fresh cart service, so nothing is persisted and
// concurrent requests never share engine state.
func quoteHandler(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req quoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if len(req.Lines) == 0 && req.CurrentItem == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "at least one line required"})
			return
		}
		for _, line := range req.Lines {
			if line.Product.ID == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "line product id required"})
				return
			}
			if line.Quantity <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
				return
			}
		}

		svc := cart.New(logger)
		for _, line := range req.Lines {
			svc.Add(line, false)
		}
		if req.CurrentItem != nil {
			svc.SetCurrentItem(*req.CurrentItem, false)
		}
		if req.Store != nil {
			svc.SetStore(req.Store, false)
		}
		switch {
		case req.ShippingMethod != nil:
			if err := svc.SetShippingMethod(req.ShippingMethod, false); err != nil {
				if errors.Is(err, domain.ErrInvalidShippingMethod) {
					c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"error": "quote failed"})
				return
			}
		case req.Store != nil && req.Store.DefaultShippingRates != nil:
			if err := svc.SetShippingMethod(req.Store, false); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}
		if req.ShippingPrice != nil {
			svc.SetShippingPrice(req.ShippingPrice, false)
		}
		if req.Address != nil {
			addr := *req.Address
			if addr.Type == "" {
				addr.Type = cart.ShippingTypePickup
			}
			if addr.Country == "" {
				addr.Country = cart.DefaultCountry
			}
			svc.SetShippingAddress(addr, false)
		}

		committed := svc.All()
		lines := make([]quoteLine, 0, len(committed))
		for _, line := range committed {
			lines = append(lines, quoteLine{
				Key:      line.Key(),
				Quantity: line.Quantity,
				Total:    svc.ItemTotal(line),
			})
		}

		c.JSON(http.StatusOK, quoteResponse{
			Lines:                  lines,
			Subtotal:               svc.Subtotal(),
			ShippingPrice:          svc.ShippingPrice(),
			AvailableShippingTypes: svc.AvailableShippingTypes(),
			Total:                  svc.Total(),
		})
	}
}
