package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/feeefapp/feeef-go/internal/cart"
	"github.com/feeefapp/feeef-go/internal/catalog"
	"github.com/feeefapp/feeef-go/internal/config"
)

func main() {
	var (
		productPath  string
		storePath    string
		methodPath   string
		pricePath    string
		quantity     int
		variantPath  string
		addonSpec    string
		offerCode    string
		state        string
		country      string
		shippingType string
	)
	flag.StringVar(&productPath, "product", "", "Path to a product snapshot JSON file")
	flag.StringVar(&storePath, "store", "", "Path to a store snapshot JSON file")
	flag.StringVar(&methodPath, "method", "", "Path to a legacy shipping method JSON file")
	flag.StringVar(&pricePath, "shipping-price", "", "Path to a geo shipping price JSON file")
	flag.IntVar(&quantity, "qty", 1, "Line quantity")
	flag.StringVar(&variantPath, "variant", "", "Variant path, e.g. red/large")
	flag.StringVar(&addonSpec, "addons", "", "Addon selections, e.g. 'Extra Cheese=1,Extra Sauce=2'")
	flag.StringVar(&offerCode, "offer", "", "Offer code to attach from the product's offers")
	flag.StringVar(&state, "state", "", "Delivery state code")
	flag.StringVar(&country, "country", "", "Delivery country code")
	flag.StringVar(&shippingType, "type", string(cart.ShippingTypeHome), "Shipping type: pickup, home or store")
	flag.Parse()

	if productPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	logger := log.New(os.Stderr, "[quote] ", log.LstdFlags)

	product, err := catalog.LoadProduct(productPath)
	if err != nil {
		logger.Fatalf("load product: %v", err)
	}

	line := cart.Line{
		Product:  *product,
		Quantity: quantity,
		Variant:  variantPath,
		Addons:   parseAddons(addonSpec),
	}
	if offerCode != "" {
		for i := range product.Offers {
			if product.Offers[i].Code == offerCode {
				line.Offer = &product.Offers[i]
				break
			}
		}
		if line.Offer == nil {
			logger.Fatalf("offer %q not found on product %s", offerCode, product.ID)
		}
	}

	svc := cart.New(logger)
	svc.Add(line, false)

	if storePath != "" {
		store, err := catalog.LoadStore(storePath)
		if err != nil {
			logger.Fatalf("load store: %v", err)
		}
		svc.SetStore(store, false)
		if methodPath == "" && store.DefaultShippingRates != nil {
			if err := svc.SetShippingMethod(store, false); err != nil {
				logger.Fatalf("set shipping method from store: %v", err)
			}
		}
	}
	if methodPath != "" {
		method, err := catalog.LoadShippingMethod(methodPath)
		if err != nil {
			logger.Fatalf("load shipping method: %v", err)
		}
		if err := svc.SetShippingMethod(method, false); err != nil {
			logger.Fatalf("set shipping method: %v", err)
		}
	}
	if pricePath != "" {
		price, err := catalog.LoadShippingPrice(pricePath)
		if err != nil {
			logger.Fatalf("load shipping price: %v", err)
		}
		svc.SetShippingPrice(price, false)
	}

	if country == "" {
		country = cfg.DefaultCountry
	}
	svc.UpdateShippingAddress(cart.AddressUpdate{
		State:   &state,
		Country: &country,
		Type:    typePtr(cart.ShippingType(shippingType)),
	}, false)

	fmt.Printf("product:   %s (%s)\n", product.Name, product.ID)
	fmt.Printf("line:      qty=%d variant=%q total=%.2f\n", quantity, variantPath, svc.ItemTotal(line))
	fmt.Printf("subtotal:  %.2f\n", svc.Subtotal())
	if types := svc.AvailableShippingTypes(); len(types) > 0 {
		names := make([]string, len(types))
		for i, t := range types {
			names[i] = string(t)
		}
		fmt.Printf("available: %s\n", strings.Join(names, ", "))
	}
	fmt.Printf("shipping:  %.2f\n", svc.ShippingPrice())
	fmt.Printf("total:     %.2f\n", svc.Total())
}

// parseAddons turns "Title=2,Other=1" into addon selections. Entries
// without a count default to 1; bad counts are skipped.
func parseAddons(spec string) map[string]int {
	if spec == "" {
		return nil
	}
	addons := make(map[string]int)
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		title, countStr, found := strings.Cut(part, "=")
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		count := 1
		if found {
			n, err := strconv.Atoi(strings.TrimSpace(countStr))
			if err != nil {
				continue
			}
			count = n
		}
		addons[title] = count
	}
	if len(addons) == 0 {
		return nil
	}
	return addons
}

func typePtr(t cart.ShippingType) *cart.ShippingType {
	return &t
}
