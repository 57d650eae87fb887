package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/mkovalev/shop-backend/internal/logging"
	"github.com/mkovalev/shop-backend/internal/models"
	"github.com/mkovalev/shop-backend/internal/upload"
)

type ProductHandler struct {
	DB      *gorm.DB
	Uploads *upload.Saver
}

// storeError surfaces a store failure to the client unmodified.
func storeError(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}

// productUpdate rewrites name/stock/price and leaves the stored image alone.
type productUpdate struct {
	Name  string
	Stock int
	Price float64
}

func (u productUpdate) assignments() map[string]any {
	return map[string]any{"name": u.Name, "stock": u.Stock, "price": u.Price}
}

// productImageUpdate additionally replaces the image URL.
type productImageUpdate struct {
	productUpdate
	Image string
}

func (u productImageUpdate) assignments() map[string]any {
	m := u.productUpdate.assignments()
	m["image"] = u.Image
	return m
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	// initialized so an empty table serializes as [] rather than null
	products := make([]models.Product, 0)
	if err := h.DB.Find(&products).Error; err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.FormValue("id"))
	if err != nil {
		return storeError(c, err)
	}
	stock, err := strconv.Atoi(c.FormValue("stock"))
	if err != nil {
		return storeError(c, err)
	}
	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil {
		return storeError(c, err)
	}

	image := ""
	if fh, ferr := c.FormFile("image"); ferr == nil {
		image, err = h.Uploads.Save(fh)
		if err != nil {
			return storeError(c, err)
		}
	}

	prod := models.Product{
		ID:    id,
		Name:  c.FormValue("name"),
		Stock: stock,
		Price: price,
		Image: image,
	}

	// A duplicate id fails on the primary key and surfaces as the driver's
	// own error; nothing classifies it further.
	if err := h.DB.Create(&prod).Error; err != nil {
		return storeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Product Added Successfully"})
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	stock, err := strconv.Atoi(c.FormValue("stock"))
	if err != nil {
		return storeError(c, err)
	}
	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil {
		return storeError(c, err)
	}

	base := productUpdate{Name: c.FormValue("name"), Stock: stock, Price: price}

	var assign map[string]any
	if fh, ferr := c.FormFile("image"); ferr == nil {
		url, err := h.Uploads.Save(fh)
		if err != nil {
			return storeError(c, err)
		}
		assign = productImageUpdate{productUpdate: base, Image: url}.assignments()
	} else {
		assign = base.assignments()
	}

	res := h.DB.Model(&models.Product{}).Where("id = ?", c.Param("id")).Updates(assign)
	if res.Error != nil {
		return storeError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Product not found"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Product Updated Successfully"})
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	res := h.DB.Where("id = ?", c.Param("id")).Delete(&models.Product{})
	if res.Error != nil {
		logging.FromContext(c.Request().Context()).Error("product delete failed",
			"id", c.Param("id"), "error", res.Error)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during deletion."})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Product not found"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Product Deleted Successfully"})
}
