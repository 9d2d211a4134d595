package postgres

import (
	"encoding/json"

	"organic/internal/domain/entity"
	"organic/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

// Mapping helpers between persistence models and domain entities. The jsonb
// document columns (images, cart, wishlist, addresses, pages) round-trip
// through encoding/json here so the rest of the codebase only ever sees
// typed slices and structs.

func marshalJSONColumn(v any) (datatypes.JSON, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal jsonb column")
	}

	return datatypes.JSON(raw), nil
}

func unmarshalJSONColumn(raw datatypes.JSON, dest any) error {
	if len(raw) == 0 {
		return nil
	}

	return errors.Wrap(json.Unmarshal(raw, dest), "failed to unmarshal jsonb column")
}

func toProductDomain(productM *model.ProductModel) (*entity.Product, error) {
	var images []string
	if err := unmarshalJSONColumn(productM.Images, &images); err != nil {
		return nil, err
	}

	return &entity.Product{
		ID:              productM.ID,
		Name:            productM.Name,
		Slug:            productM.Slug,
		Details:         productM.Details,
		Price:           productM.Price,
		Discount:        productM.Discount,
		Trending:        productM.Trending,
		PeopleBought:    productM.PeopleBought,
		CategoryID:      productM.CategoryID,
		Inventory:       productM.Inventory,
		SKU:             productM.SKU,
		Images:          images,
		IsPublished:     productM.IsPublished,
		Rating:          productM.Rating,
		NumberOfReviews: productM.NumberOfReviews,
		MetaTitle:       productM.MetaTitle,
		MetaDescription: productM.MetaDescription,
		CreatedAt:       productM.CreatedAt,
		UpdatedAt:       productM.UpdatedAt,
	}, nil
}

func fromProductDomain(product *entity.Product) (*model.ProductModel, error) {
	images := product.Images
	if images == nil {
		images = []string{}
	}
	imagesJSON, err := marshalJSONColumn(images)
	if err != nil {
		return nil, err
	}

	return &model.ProductModel{
		ID:              product.ID,
		Name:            product.Name,
		Slug:            product.Slug,
		Details:         product.Details,
		Price:           product.Price,
		Discount:        product.Discount,
		Trending:        product.Trending,
		PeopleBought:    product.PeopleBought,
		CategoryID:      product.CategoryID,
		Inventory:       product.Inventory,
		SKU:             product.SKU,
		Images:          imagesJSON,
		IsPublished:     product.IsPublished,
		Rating:          product.Rating,
		NumberOfReviews: product.NumberOfReviews,
		MetaTitle:       product.MetaTitle,
		MetaDescription: product.MetaDescription,
		CreatedAt:       product.CreatedAt,
		UpdatedAt:       product.UpdatedAt,
	}, nil
}

func toCategoryDomain(categoryM *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:               categoryM.ID,
		Name:             categoryM.Name,
		Slug:             categoryM.Slug,
		Description:      categoryM.Description,
		ParentCategoryID: categoryM.ParentCategoryID,
		ImageURL:         categoryM.ImageURL,
		MetaTitle:        categoryM.MetaTitle,
		MetaDescription:  categoryM.MetaDescription,
		CreatedAt:        categoryM.CreatedAt,
		UpdatedAt:        categoryM.UpdatedAt,
	}
}

func fromCategoryDomain(category *entity.Category) *model.CategoryModel {
	return &model.CategoryModel{
		ID:               category.ID,
		Name:             category.Name,
		Slug:             category.Slug,
		Description:      category.Description,
		ParentCategoryID: category.ParentCategoryID,
		ImageURL:         category.ImageURL,
		MetaTitle:        category.MetaTitle,
		MetaDescription:  category.MetaDescription,
		CreatedAt:        category.CreatedAt,
		UpdatedAt:        category.UpdatedAt,
	}
}

func toUserDomain(userM *model.UserModel) (*entity.User, error) {
	var cart []entity.CartItem
	if err := unmarshalJSONColumn(userM.Cart, &cart); err != nil {
		return nil, err
	}

	var wishlist []uuid.UUID
	if err := unmarshalJSONColumn(userM.Wishlist, &wishlist); err != nil {
		return nil, err
	}

	var shipping, billing []entity.Address
	if err := unmarshalJSONColumn(userM.ShippingAddresses, &shipping); err != nil {
		return nil, err
	}
	if err := unmarshalJSONColumn(userM.BillingAddresses, &billing); err != nil {
		return nil, err
	}

	return &entity.User{
		ID:                userM.ID,
		ClerkID:           userM.ClerkID,
		Email:             userM.Email,
		Name:              userM.Name,
		FirstName:         userM.FirstName,
		LastName:          userM.LastName,
		ImageURL:          userM.ImageURL,
		Phone:             userM.Phone,
		Role:              entity.Role(userM.Role),
		Cart:              cart,
		Wishlist:          wishlist,
		ShippingAddresses: shipping,
		BillingAddresses:  billing,
		IsActive:          userM.IsActive,
		LastLoginAt:       userM.LastLoginAt,
		CreatedAt:         userM.CreatedAt,
		UpdatedAt:         userM.UpdatedAt,
	}, nil
}

func fromUserDomain(user *entity.User) (*model.UserModel, error) {
	cart := user.Cart
	if cart == nil {
		cart = []entity.CartItem{}
	}
	cartJSON, err := marshalJSONColumn(cart)
	if err != nil {
		return nil, err
	}

	wishlist := user.Wishlist
	if wishlist == nil {
		wishlist = []uuid.UUID{}
	}
	wishlistJSON, err := marshalJSONColumn(wishlist)
	if err != nil {
		return nil, err
	}

	shipping := user.ShippingAddresses
	if shipping == nil {
		shipping = []entity.Address{}
	}
	shippingJSON, err := marshalJSONColumn(shipping)
	if err != nil {
		return nil, err
	}

	billing := user.BillingAddresses
	if billing == nil {
		billing = []entity.Address{}
	}
	billingJSON, err := marshalJSONColumn(billing)
	if err != nil {
		return nil, err
	}

	role := user.Role
	if role == "" {
		role = entity.RoleUser
	}

	return &model.UserModel{
		ID:                user.ID,
		ClerkID:           user.ClerkID,
		Email:             user.Email,
		Name:              user.Name,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		ImageURL:          user.ImageURL,
		Phone:             user.Phone,
		Role:              role.String(),
		Cart:              cartJSON,
		Wishlist:          wishlistJSON,
		ShippingAddresses: shippingJSON,
		BillingAddresses:  billingJSON,
		IsActive:          user.IsActive,
		LastLoginAt:       user.LastLoginAt,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}, nil
}

func toOrderItemDomain(itemM *model.OrderItemModel) *entity.OrderItem {
	return &entity.OrderItem{
		ID:              itemM.ID,
		OrderID:         itemM.OrderID,
		ProductID:       itemM.ProductID,
		ProductName:     itemM.ProductName,
		Quantity:        itemM.Quantity,
		UnitPrice:       itemM.UnitPrice,
		DiscountApplied: itemM.DiscountApplied,
		TotalPrice:      itemM.TotalPrice,
		CreatedAt:       itemM.CreatedAt,
	}
}

func fromOrderItemDomain(item *entity.OrderItem) model.OrderItemModel {
	return model.OrderItemModel{
		ID:              item.ID,
		OrderID:         item.OrderID,
		ProductID:       item.ProductID,
		ProductName:     item.ProductName,
		Quantity:        item.Quantity,
		UnitPrice:       item.UnitPrice,
		DiscountApplied: item.DiscountApplied,
		TotalPrice:      item.TotalPrice,
		CreatedAt:       item.CreatedAt,
	}
}

func toOrderDomain(orderM *model.OrderModel) (*entity.Order, error) {
	var shipping, billing *entity.Address
	if len(orderM.ShippingAddress) > 0 {
		shipping = &entity.Address{}
		if err := unmarshalJSONColumn(orderM.ShippingAddress, shipping); err != nil {
			return nil, err
		}
	}
	if len(orderM.BillingAddress) > 0 {
		billing = &entity.Address{}
		if err := unmarshalJSONColumn(orderM.BillingAddress, billing); err != nil {
			return nil, err
		}
	}

	items := make([]*entity.OrderItem, 0, len(orderM.Items))
	for i := range orderM.Items {
		items = append(items, toOrderItemDomain(&orderM.Items[i]))
	}

	return &entity.Order{
		ID:              orderM.ID,
		UserID:          orderM.UserID,
		OrderNumber:     orderM.OrderNumber,
		OrderDate:       orderM.OrderDate,
		ShippingAddress: shipping,
		BillingAddress:  billing,
		TotalAmount:     orderM.TotalAmount,
		ShippingCost:    orderM.ShippingCost,
		TaxAmount:       orderM.TaxAmount,
		DiscountApplied: orderM.DiscountApplied,
		PaymentStatus:   entity.PaymentStatus(orderM.PaymentStatus),
		ShippingStatus:  entity.ShippingStatus(orderM.ShippingStatus),
		TrackingNumber:  orderM.TrackingNumber,
		Items:           items,
		CreatedAt:       orderM.CreatedAt,
		UpdatedAt:       orderM.UpdatedAt,
	}, nil
}

func fromOrderDomain(order *entity.Order) (*model.OrderModel, error) {
	var shippingJSON, billingJSON datatypes.JSON
	var err error
	if order.ShippingAddress != nil {
		if shippingJSON, err = marshalJSONColumn(order.ShippingAddress); err != nil {
			return nil, err
		}
	}
	if order.BillingAddress != nil {
		if billingJSON, err = marshalJSONColumn(order.BillingAddress); err != nil {
			return nil, err
		}
	}

	items := make([]model.OrderItemModel, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, fromOrderItemDomain(item))
	}

	return &model.OrderModel{
		ID:              order.ID,
		UserID:          order.UserID,
		OrderNumber:     order.OrderNumber,
		OrderDate:       order.OrderDate,
		ShippingAddress: shippingJSON,
		BillingAddress:  billingJSON,
		TotalAmount:     order.TotalAmount,
		ShippingCost:    order.ShippingCost,
		TaxAmount:       order.TaxAmount,
		DiscountApplied: order.DiscountApplied,
		PaymentStatus:   string(order.PaymentStatus),
		ShippingStatus:  string(order.ShippingStatus),
		TrackingNumber:  order.TrackingNumber,
		Items:           items,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}, nil
}

func toStoreDomain(storeM *model.StoreModel) (*entity.Store, error) {
	var pages []entity.StorePage
	if err := unmarshalJSONColumn(storeM.Pages, &pages); err != nil {
		return nil, err
	}

	var social entity.SocialLinks
	if err := unmarshalJSONColumn(storeM.SocialLinks, &social); err != nil {
		return nil, err
	}

	var featured []string
	if err := unmarshalJSONColumn(storeM.FeaturedImages, &featured); err != nil {
		return nil, err
	}

	return &entity.Store{
		ID:              storeM.ID,
		Name:            storeM.Name,
		Logo:            storeM.Logo,
		Tagline:         storeM.Tagline,
		Link:            storeM.Link,
		Description:     storeM.Description,
		Pages:           pages,
		SocialLinks:     social,
		FeaturedImages:  featured,
		ContactEmail:    storeM.ContactEmail,
		ContactPhone:    storeM.ContactPhone,
		DefaultCurrency: storeM.DefaultCurrency,
		TaxRate:         storeM.TaxRate,
		ShippingPolicy:  storeM.ShippingPolicy,
		ReturnPolicy:    storeM.ReturnPolicy,
		MetaTitle:       storeM.MetaTitle,
		MetaDescription: storeM.MetaDescription,
		CreatedAt:       storeM.CreatedAt,
		UpdatedAt:       storeM.UpdatedAt,
	}, nil
}

func fromStoreDomain(store *entity.Store) (*model.StoreModel, error) {
	pages := store.Pages
	if pages == nil {
		pages = []entity.StorePage{}
	}
	pagesJSON, err := marshalJSONColumn(pages)
	if err != nil {
		return nil, err
	}

	socialJSON, err := marshalJSONColumn(store.SocialLinks)
	if err != nil {
		return nil, err
	}

	featured := store.FeaturedImages
	if featured == nil {
		featured = []string{}
	}
	featuredJSON, err := marshalJSONColumn(featured)
	if err != nil {
		return nil, err
	}

	return &model.StoreModel{
		ID:              store.ID,
		Name:            store.Name,
		Logo:            store.Logo,
		Tagline:         store.Tagline,
		Link:            store.Link,
		Description:     store.Description,
		Pages:           pagesJSON,
		SocialLinks:     socialJSON,
		FeaturedImages:  featuredJSON,
		ContactEmail:    store.ContactEmail,
		ContactPhone:    store.ContactPhone,
		DefaultCurrency: store.DefaultCurrency,
		TaxRate:         store.TaxRate,
		ShippingPolicy:  store.ShippingPolicy,
		ReturnPolicy:    store.ReturnPolicy,
		MetaTitle:       store.MetaTitle,
		MetaDescription: store.MetaDescription,
		CreatedAt:       store.CreatedAt,
		UpdatedAt:       store.UpdatedAt,
	}, nil
}

func toShippingRateDomain(rateM *model.ShippingRateModel) *entity.ShippingRate {
	return &entity.ShippingRate{
		ID:             rateM.ID,
		Location:       rateM.Location,
		WeightRangeMin: rateM.WeightRangeMin,
		WeightRangeMax: rateM.WeightRangeMax,
		Price:          rateM.Price,
		CreatedAt:      rateM.CreatedAt,
		UpdatedAt:      rateM.UpdatedAt,
	}
}

func fromShippingRateDomain(rate *entity.ShippingRate) *model.ShippingRateModel {
	return &model.ShippingRateModel{
		ID:             rate.ID,
		Location:       rate.Location,
		WeightRangeMin: rate.WeightRangeMin,
		WeightRangeMax: rate.WeightRangeMax,
		Price:          rate.Price,
		CreatedAt:      rate.CreatedAt,
		UpdatedAt:      rate.UpdatedAt,
	}
}
