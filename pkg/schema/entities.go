package schema

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

// builtinSchemas returns the built-in retail entity schemas. All live in
// the ecommerce domain; additional domains load from SCHEMA_DIR.
func builtinSchemas() []*Schema {
	return []*Schema{
		userSchema(),
		cartSchema(),
		orderSchema(),
		paymentSchema(),
		productSchema(),
		reviewSchema(),
	}
}

func userSchema() *Schema {
	return &Schema{
		Name:        "user",
		Domain:      "ecommerce",
		Description: "Customer/user account",
		Fields: NewFieldMap().
			Add("user_id", &FieldDef{Type: TypeString, Format: "USR-{random:7}", Required: true, Description: "Unique user identifier"}).
			Add("email", &FieldDef{Type: TypeEmail, Required: true, Description: "User email address"}).
			Add("first_name", &FieldDef{Type: TypeString, MinLength: iptr(1), MaxLength: iptr(50), Required: true, Description: "First name"}).
			Add("last_name", &FieldDef{Type: TypeString, MinLength: iptr(1), MaxLength: iptr(50), Required: true, Description: "Last name"}).
			Add("phone", &FieldDef{Type: TypePhone, Description: "Phone number"}).
			Add("addresses", &FieldDef{
				Type:        TypeArray,
				Description: "Saved addresses",
				ItemSchema: &FieldDef{
					Type: TypeObject,
					Fields: NewFieldMap().
						Add("label", &FieldDef{Type: TypeString, Description: "Address label (home, work, etc.)"}).
						Add("street", &FieldDef{Type: TypeString, Required: true}).
						Add("city", &FieldDef{Type: TypeString, Required: true}).
						Add("state", &FieldDef{Type: TypeString, Required: true}).
						Add("zip", &FieldDef{Type: TypeString, Required: true}).
						Add("country", &FieldDef{Type: TypeString, Default: "US", Required: true}).
						Add("is_default", &FieldDef{Type: TypeBoolean, Default: false}),
				},
			}).
			Add("loyalty_tier", &FieldDef{
				Type:        TypeEnum,
				Values:      []string{"bronze", "silver", "gold", "platinum"},
				Default:     "bronze",
				Description: "Loyalty program tier",
			}).
			Add("created_at", &FieldDef{Type: TypeDateTime, Format: "iso8601", Required: true, Description: "Account creation timestamp"}).
			Add("last_login", &FieldDef{Type: TypeDateTime, Format: "iso8601", Description: "Last login timestamp"}),
		CoherenceRules: []string{
			"last_login >= created_at if last_login exists",
		},
	}
}

func cartSchema() *Schema {
	return &Schema{
		Name:        "cart",
		Domain:      "ecommerce",
		Description: "Shopping cart with items",
		Fields: NewFieldMap().
			Add("cart_id", &FieldDef{Type: TypeString, Format: "CRT-{year}-{random:7}", Required: true, Description: "Unique cart identifier"}).
			Add("customer_id", &FieldDef{Type: TypeString, Format: "USR-{random:7}", Required: true, Description: "Customer who owns the cart"}).
			Add("items", &FieldDef{
				Type:        TypeArray,
				Required:    true,
				Description: "Items in the cart",
				ItemSchema: &FieldDef{
					Type: TypeObject,
					Fields: NewFieldMap().
						Add("sku", &FieldDef{Type: TypeString, Required: true, Description: "Product SKU"}).
						Add("name", &FieldDef{Type: TypeString, Required: true, Description: "Product name"}).
						Add("quantity", &FieldDef{Type: TypeInteger, Min: fptr(1), Max: fptr(99), Required: true, Description: "Quantity"}).
						Add("price", &FieldDef{Type: TypeFloat, Min: fptr(0.01), Required: true, Description: "Unit price"}).
						Add("category", &FieldDef{Type: TypeString, Description: "Product category"}),
				},
			}).
			Add("subtotal", &FieldDef{Type: TypeFloat, Min: fptr(0), Required: true, Description: "Subtotal before tax"}).
			Add("tax", &FieldDef{Type: TypeFloat, Min: fptr(0), Required: true, Description: "Tax amount"}).
			Add("total", &FieldDef{Type: TypeFloat, Min: fptr(0), Required: true, Description: "Total including tax"}).
			Add("currency", &FieldDef{Type: TypeEnum, Values: []string{"USD", "CAD"}, Default: "USD", Description: "Currency code"}).
			Add("created_at", &FieldDef{Type: TypeDateTime, Format: "iso8601", Required: true, Description: "Cart creation timestamp"}).
			Add("updated_at", &FieldDef{Type: TypeDateTime, Format: "iso8601", Description: "Last update timestamp"}),
		CoherenceRules: []string{
			"total = subtotal + tax",
			"subtotal = sum(items.quantity * items.price)",
			"items should be thematically related",
		},
	}
}

func addressFields() *FieldMap {
	return NewFieldMap().
		Add("street", &FieldDef{Type: TypeString, Required: true}).
		Add("city", &FieldDef{Type: TypeString, Required: true}).
		Add("state", &FieldDef{Type: TypeString, Required: true}).
		Add("zip", &FieldDef{Type: TypeString, Required: true}).
		Add("country", &FieldDef{Type: TypeString, Default: "US", Required: true})
}

func orderSchema() *Schema {
	return &Schema{
		Name:        "order",
		Domain:      "ecommerce",
		Description: "Customer order with items and shipping",
		Fields: NewFieldMap().
			Add("order_id", &FieldDef{Type: TypeString, Format: "ORD-{year}-{random:7}", Required: true, Description: "Unique order identifier"}).
			Add("customer_id", &FieldDef{Type: TypeString, Format: "USR-{random:7}", Required: true, Description: "Customer who placed the order"}).
			Add("items", &FieldDef{
				Type:        TypeArray,
				Required:    true,
				Description: "Ordered items",
				ItemSchema: &FieldDef{
					Type: TypeObject,
					Fields: NewFieldMap().
						Add("sku", &FieldDef{Type: TypeString, Required: true}).
						Add("name", &FieldDef{Type: TypeString, Required: true}).
						Add("quantity", &FieldDef{Type: TypeInteger, Min: fptr(1), Required: true}).
						Add("price", &FieldDef{Type: TypeFloat, Min: fptr(0.01), Required: true}),
				},
			}).
			Add("shipping_address", &FieldDef{Type: TypeObject, Required: true, Description: "Shipping address", Fields: addressFields()}).
			Add("billing_address", &FieldDef{Type: TypeObject, Description: "Billing address (optional, defaults to shipping)", Fields: addressFields()}).
			Add("payment_method", &FieldDef{
				Type:        TypeEnum,
				Values:      []string{"credit_card", "paypal", "apple_pay", "google_pay", "gift_card"},
				Required:    true,
				Description: "Payment method used",
			}).
			Add("status", &FieldDef{
				Type:        TypeEnum,
				Values:      []string{"pending", "confirmed", "shipped", "delivered", "cancelled"},
				Default:     "pending",
				Required:    true,
				Description: "Order status",
			}).
			Add("subtotal", &FieldDef{Type: TypeFloat, Min: fptr(0), Required: true}).
			Add("tax", &FieldDef{Type: TypeFloat, Min: fptr(0), Required: true}).
			Add("shipping", &FieldDef{Type: TypeFloat, Min: fptr(0), Required: true}).
			Add("total", &FieldDef{Type: TypeFloat, Min: fptr(0), Required: true}).
			Add("created_at", &FieldDef{Type: TypeDateTime, Format: "iso8601", Required: true}).
			Add("updated_at", &FieldDef{Type: TypeDateTime, Format: "iso8601"}),
		CoherenceRules: []string{
			"total = subtotal + tax + shipping",
			"updated_at >= created_at",
		},
	}
}

func paymentSchema() *Schema {
	return &Schema{
		Name:        "payment",
		Domain:      "ecommerce",
		Description: "Payment transaction record",
		Fields: NewFieldMap().
			Add("payment_id", &FieldDef{Type: TypeString, Format: "PAY-{year}-{random:7}", Required: true, Description: "Unique payment identifier"}).
			Add("order_id", &FieldDef{Type: TypeString, Format: "ORD-{year}-{random:7}", Required: true, Description: "Associated order ID"}).
			Add("method", &FieldDef{
				Type:        TypeEnum,
				Values:      []string{"credit_card", "debit_card", "paypal", "apple_pay", "google_pay", "gift_card"},
				Required:    true,
				Description: "Payment method",
			}).
			Add("amount", &FieldDef{Type: TypeFloat, Min: fptr(0.01), Required: true, Description: "Payment amount"}).
			Add("currency", &FieldDef{Type: TypeEnum, Values: []string{"USD", "CAD", "EUR", "GBP"}, Default: "USD", Required: true, Description: "Currency code"}).
			Add("status", &FieldDef{
				Type:        TypeEnum,
				Values:      []string{"pending", "authorized", "captured", "failed", "refunded"},
				Default:     "pending",
				Required:    true,
				Description: "Payment status",
			}).
			Add("card_last_four", &FieldDef{Type: TypeString, Pattern: "^[0-9]{4}$", Description: "Last 4 digits of card (if applicable)"}).
			Add("transaction_id", &FieldDef{Type: TypeString, Description: "External transaction ID"}).
			Add("created_at", &FieldDef{Type: TypeDateTime, Format: "iso8601", Required: true, Description: "Payment creation timestamp"}).
			Add("authorized_at", &FieldDef{Type: TypeDateTime, Format: "iso8601", Description: "Authorization timestamp"}).
			Add("captured_at", &FieldDef{Type: TypeDateTime, Format: "iso8601", Description: "Capture timestamp"}),
		CoherenceRules: []string{
			"authorized_at >= created_at if authorized_at exists",
			"captured_at >= authorized_at if captured_at exists",
		},
	}
}

func productSchema() *Schema {
	return &Schema{
		Name:        "product",
		Domain:      "ecommerce",
		Description: "Product catalog item",
		Fields: NewFieldMap().
			Add("product_id", &FieldDef{Type: TypeUUID, Required: true, Description: "Unique product identifier"}).
			Add("name", &FieldDef{Type: TypeString, Required: true, Description: "Product name"}).
			Add("description", &FieldDef{Type: TypeString, MaxLength: iptr(200), Description: "Product description"}).
			Add("price", &FieldDef{Type: TypeFloat, Min: fptr(5.0), Max: fptr(999.99), Required: true, Description: "Retail price"}).
			Add("category", &FieldDef{
				Type:        TypeEnum,
				Values:      []string{"Electronics", "Clothing", "Home", "Beauty", "Sports"},
				Required:    true,
				Description: "Product category",
			}).
			Add("sku", &FieldDef{Type: TypeString, Required: true, Description: "Stock keeping unit"}).
			Add("in_stock", &FieldDef{Type: TypeBoolean, Required: true, Description: "Whether the product is in stock"}).
			Add("stock_quantity", &FieldDef{Type: TypeInteger, Min: fptr(0), Max: fptr(500), Required: true, Description: "Units on hand"}).
			Add("brand", &FieldDef{Type: TypeString, Required: true, Description: "Brand name"}).
			Add("created_at", &FieldDef{Type: TypeDateTime, Format: "iso8601", Required: true}).
			Add("updated_at", &FieldDef{Type: TypeDateTime, Format: "iso8601", Required: true}),
	}
}

func reviewSchema() *Schema {
	return &Schema{
		Name:        "review",
		Domain:      "ecommerce",
		Description: "Product review from customer",
		Fields: NewFieldMap().
			Add("review_id", &FieldDef{Type: TypeString, Format: "REV-{random:10}", Required: true, Description: "Unique review identifier"}).
			Add("product_id", &FieldDef{Type: TypeString, Required: true, Description: "Product being reviewed"}).
			Add("user_id", &FieldDef{Type: TypeString, Format: "USR-{random:7}", Required: true, Description: "User who wrote the review"}).
			Add("rating", &FieldDef{Type: TypeInteger, Min: fptr(1), Max: fptr(5), Required: true, Description: "Star rating (1-5)"}).
			Add("title", &FieldDef{Type: TypeString, MinLength: iptr(5), MaxLength: iptr(100), Required: true, Description: "Review title"}).
			Add("body", &FieldDef{Type: TypeString, MinLength: iptr(10), MaxLength: iptr(5000), Required: true, Description: "Review text"}).
			Add("verified_purchase", &FieldDef{Type: TypeBoolean, Default: false, Required: true, Description: "Whether reviewer purchased the product"}).
			Add("helpful_votes", &FieldDef{Type: TypeInteger, Min: fptr(0), Default: 0, Required: true, Description: "Number of helpful votes"}).
			Add("created_at", &FieldDef{Type: TypeDateTime, Format: "iso8601", Required: true, Description: "Review creation timestamp"}),
		CoherenceRules: []string{
			"title and body should match rating sentiment",
		},
	}
}
