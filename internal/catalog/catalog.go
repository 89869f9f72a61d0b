// Package catalog loads product, store, and shipping snapshots from JSON
// files. It stands in for the remote catalog: the id-to-object resolution
// the cart engine expects from its caller happens here, against files
// instead of an API.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/feeefapp/feeef-go/internal/domain"
)

// LoadProduct reads a product snapshot from path.
func LoadProduct(path string) (*domain.Product, error) {
	var p domain.Product
	if err := readJSON(path, &p); err != nil {
		return nil, err
	}
	if p.ID == "" {
		return nil, fmt.Errorf("product file %s: missing id", path)
	}
	return &p, nil
}

// LoadStore reads a store snapshot from path.
func LoadStore(path string) (*domain.Store, error) {
	var st domain.Store
	if err := readJSON(path, &st); err != nil {
		return nil, err
	}
	if st.ID == "" {
		return nil, fmt.Errorf("store file %s: missing id", path)
	}
	return &st, nil
}

// LoadShippingMethod reads a legacy shipping method from path.
func LoadShippingMethod(path string) (*domain.ShippingMethod, error) {
	var m domain.ShippingMethod
	if err := readJSON(path, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadShippingPrice reads a geo shipping price table from path.
func LoadShippingPrice(path string) (*domain.ShippingPrice, error) {
	var p domain.ShippingPrice
	if err := readJSON(path, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("read %s: %w", path, domain.ErrNotFound)
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
