package model

// BasketItem pairs a catalog product with a quantity that is always >= 1.
type BasketItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Basket is an ordered list of items, unique by product id.
// Every method returns a new Basket and leaves the receiver untouched.
type Basket []BasketItem

func (b Basket) Index(productId string) int {
	for i, item := range b {
		if item.Product.Id == productId {
			return i
		}
	}
	return -1
}

func (b Basket) Find(productId string) (BasketItem, bool) {
	if i := b.Index(productId); i != -1 {
		return b[i], true
	}
	return BasketItem{}, false
}

func (b Basket) Contains(productId string) bool {
	return b.Index(productId) != -1
}

// WithAdded increments the quantity of an existing item or appends a new one.
func (b Basket) WithAdded(product Product, quantity int) Basket {
	if quantity <= 0 {
		return b.Clone()
	}

	next := b.Clone()
	if i := next.Index(product.Id); i != -1 {
		next[i].Quantity += quantity
		return next
	}
	return append(next, BasketItem{Product: product, Quantity: quantity})
}

// WithQuantity sets the quantity of an existing item, removing it when quantity <= 0.
// Unknown products leave the basket unchanged.
func (b Basket) WithQuantity(productId string, quantity int) Basket {
	i := b.Index(productId)
	if i == -1 {
		return b.Clone()
	}
	if quantity <= 0 {
		return b.Without(productId)
	}

	next := b.Clone()
	next[i].Quantity = quantity
	return next
}

func (b Basket) Without(productId string) Basket {
	next := make(Basket, 0, len(b))
	for _, item := range b {
		if item.Product.Id != productId {
			next = append(next, item)
		}
	}
	return next
}

// Clone copies the items and their ingredient slices so the copy shares nothing mutable.
func (b Basket) Clone() Basket {
	next := make(Basket, len(b))
	for i, item := range b {
		next[i] = item
		if item.Product.Ingredients != nil {
			next[i].Product.Ingredients = append([]string(nil), item.Product.Ingredients...)
		}
	}
	return next
}

func (b Basket) Products() []Product {
	products := make([]Product, 0, len(b))
	for _, item := range b {
		products = append(products, item.Product)
	}
	return products
}

func (b Basket) Units() int {
	total := 0
	for _, item := range b {
		total += item.Quantity
	}
	return total
}
