// Package querykey produces the cache keys used by the query cache.
//
// Keys are hierarchical: "products" covers "products:details:tomato-seeds",
// so invalidating a broad prefix also drops every narrower key beneath it.
// Keys for the same logical query with the same parameters always compare
// equal, which makes them safe to use for both lookup and invalidation.
package querykey

import (
	"strconv"
	"strings"
)

// Separator joins key segments. Segment values never contain it unescaped.
const Separator = ":"

// Key is a hierarchical cache key.
type Key []string

// String renders the key in its canonical form.
func (k Key) String() string {
	escaped := make([]string, len(k))
	for i, segment := range k {
		escaped[i] = strings.ReplaceAll(segment, Separator, "_")
	}

	return strings.Join(escaped, Separator)
}

// Append derives a narrower key from k without mutating it.
func (k Key) Append(segments ...string) Key {
	derived := make(Key, 0, len(k)+len(segments))
	derived = append(derived, k...)
	derived = append(derived, segments...)

	return derived
}

// HasPrefix reports whether prefix covers k in the key hierarchy.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i := range prefix {
		if k[i] != prefix[i] {
			return false
		}
	}

	return true
}

// Resource names the logical collections the registry knows about.
type Resource string

const (
	ResourceProducts      Resource = "products"
	ResourceCategories    Resource = "categories"
	ResourceUsers         Resource = "users"
	ResourceOrders        Resource = "orders"
	ResourceStore         Resource = "store"
	ResourceShippingRates Resource = "shipping_rates"
)

// --- Products ---

// ProductsAll is the root prefix for every product query.
func ProductsAll() Key { return Key{string(ResourceProducts)} }

// ProductsList keys a filtered, paginated product listing. The filter
// fingerprint must be deterministic for identical filters.
func ProductsList(page, perPage int, filterFingerprint string) Key {
	return ProductsAll().Append("list", strconv.Itoa(page), strconv.Itoa(perPage), filterFingerprint)
}

// ProductDetails keys a single product looked up by slug.
func ProductDetails(slug string) Key { return ProductsAll().Append("details", slug) }

// ProductsByCategory keys a category-scoped product page. The filter
// fingerprint keeps differently filtered pages of the same category apart,
// most importantly the published-only storefront view versus the admin view.
func ProductsByCategory(categoryID string, page, perPage int, filterFingerprint string) Key {
	return ProductsAll().Append("byCategory", categoryID, strconv.Itoa(page), strconv.Itoa(perPage), filterFingerprint)
}

// ProductsTrending keys the trending product strip.
func ProductsTrending(limit int) Key {
	return ProductsAll().Append("trending", strconv.Itoa(limit))
}

// ProductsSearch keys a search result page.
func ProductsSearch(query string, page, perPage int) Key {
	return ProductsAll().Append("search", query, strconv.Itoa(page), strconv.Itoa(perPage))
}

// --- Categories ---

// CategoriesAll is the root prefix for every category query.
func CategoriesAll() Key { return Key{string(ResourceCategories)} }

// CategoriesList keys a paginated category listing.
func CategoriesList(page, perPage int, filterFingerprint string) Key {
	return CategoriesAll().Append("list", strconv.Itoa(page), strconv.Itoa(perPage), filterFingerprint)
}

// CategoryDetails keys a single category looked up by slug.
func CategoryDetails(slug string) Key { return CategoriesAll().Append("details", slug) }

// CategoriesTree keys the parent-with-subcategories listing.
func CategoriesTree() Key { return CategoriesAll().Append("tree") }

// --- Users ---

// UsersAll is the root prefix for every user query.
func UsersAll() Key { return Key{string(ResourceUsers)} }

// UsersList keys a paginated user listing.
func UsersList(page, perPage int, filterFingerprint string) Key {
	return UsersAll().Append("list", strconv.Itoa(page), strconv.Itoa(perPage), filterFingerprint)
}

// UserDetails keys a user looked up by provider subject id.
func UserDetails(clerkID string) Key { return UsersAll().Append("details", clerkID) }

// UserCart keys a user's embedded cart.
func UserCart(userID string) Key { return UsersAll().Append("cart", userID) }

// UserWishlist keys a user's resolved wishlist products.
func UserWishlist(userID string) Key { return UsersAll().Append("wishlist", userID) }

// --- Orders ---

// OrdersAll is the root prefix for every order query.
func OrdersAll() Key { return Key{string(ResourceOrders)} }

// OrdersList keys one page of the full order listing.
func OrdersList(page, perPage int, filterFingerprint string) Key {
	return OrdersAll().Append("list", strconv.Itoa(page), strconv.Itoa(perPage), filterFingerprint)
}

// OrderDetails keys a single order with its items.
func OrderDetails(orderID string) Key { return OrdersAll().Append("details", orderID) }

// OrdersByUser keys a user's full order history.
func OrdersByUser(userID string) Key {
	return OrdersAll().Append("byUser", userID)
}

// --- Store ---

// StoreDetails keys the singleton store configuration.
func StoreDetails() Key { return Key{string(ResourceStore), "details"} }

// --- Shipping rates ---

// ShippingRatesAll is the root prefix for shipping rate queries.
func ShippingRatesAll() Key { return Key{string(ResourceShippingRates)} }

// Registry maps a mutated resource to the cache-key prefixes that mutation
// invalidates. It is computed once at startup so invalidation edges live in
// one place instead of being re-spelled at every mutation site. Keys scoped
// to a single entity (a details slug, one user's cart) are invalidated by
// the caller on top of these prefixes.
type Registry struct {
	prefixes map[Resource][]Key
}

// NewRegistry builds the invalidation map, including the cross-resource
// edges: orders touch the owning user's cart (order creation clears it), and
// category mutations touch category-scoped product listings.
func NewRegistry() *Registry {
	return &Registry{
		prefixes: map[Resource][]Key{
			ResourceProducts:      {ProductsAll()},
			ResourceCategories:    {CategoriesAll(), ProductsAll().Append("byCategory")},
			ResourceUsers:         {UsersAll()},
			ResourceOrders:        {OrdersAll(), UsersAll().Append("cart")},
			ResourceStore:         {StoreDetails()},
			ResourceShippingRates: {ShippingRatesAll()},
		},
	}
}

// PrefixesFor returns the invalidation prefixes for a resource. The result
// must not be mutated.
func (r *Registry) PrefixesFor(resource Resource) []Key {
	return r.prefixes[resource]
}
