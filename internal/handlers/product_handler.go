package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/EspacoVitaServices/salon-scheduler/internal/httpresp"
	"github.com/EspacoVitaServices/salon-scheduler/internal/models"
	"github.com/EspacoVitaServices/salon-scheduler/internal/storage"
)

// Tamanho máximo aceito no upload de foto (5 MB).
const maxPhotoUpload = 5 << 20

type ProductHandler struct {
	db     *gorm.DB
	photos *storage.PhotoStore
}

func NewProductHandler(db *gorm.DB, photos *storage.PhotoStore) *ProductHandler {
	return &ProductHandler{db: db, photos: photos}
}

func (h *ProductHandler) List(c *gin.Context) {
	salonID, _ := currentIdentity(c)

	var products []models.Product
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("name ASC").
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_products"})
		return
	}

	httpresp.List(c, products)
}

type CreateProductRequest struct {
	Name     string `json:"name" binding:"required"`
	Brand    string `json:"brand"`
	Quantity int    `json:"quantity"`

	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Category      string          `json:"category"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	salonID, _ := currentIdentity(c)

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	if req.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_quantity"})
		return
	}

	if req.PurchasePrice.IsNegative() || req.SalePrice.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_price"})
		return
	}

	product := models.Product{
		SalonID:       salonID,
		Name:          req.Name,
		Brand:         req.Brand,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		SalePrice:     req.SalePrice,
		Category:      req.Category,
	}

	if err := h.db.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

type UpdateProductRequest struct {
	Name     *string `json:"name"`
	Brand    *string `json:"brand"`
	Quantity *int    `json:"quantity"`

	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
	Category      *string          `json:"category"`
}

func (h *ProductHandler) Update(c *gin.Context) {
	salonID, _ := currentIdentity(c)
	id := c.Param("id")

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	var product models.Product
	if err := h.db.
		Where("salon_id = ?", salonID).
		First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Brand != nil {
		product.Brand = *req.Brand
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_quantity"})
			return
		}
		product.Quantity = *req.Quantity
	}
	if req.PurchasePrice != nil {
		product.PurchasePrice = *req.PurchasePrice
	}
	if req.SalePrice != nil {
		product.SalePrice = *req.SalePrice
	}
	if req.Category != nil {
		product.Category = *req.Category
	}

	if err := h.db.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	salonID, _ := currentIdentity(c)
	id := c.Param("id")

	result := h.db.
		Where("salon_id = ?", salonID).
		Delete(&models.Product{}, id)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_product"})
		return
	}

	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadPhoto recebe multipart "photo", converte para webp e grava a URL
// pública no produto. Sem bucket configurado o endpoint fica desligado.
func (h *ProductHandler) UploadPhoto(c *gin.Context) {
	if !h.photos.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "photo_storage_disabled"})
		return
	}

	salonID, _ := currentIdentity(c)
	id := c.Param("id")

	var product models.Product
	if err := h.db.
		Where("salon_id = ?", salonID).
		First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_photo"})
		return
	}

	if fileHeader.Size > maxPhotoUpload {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo_too_large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_photo"})
		return
	}
	defer file.Close()

	url, err := h.photos.UploadProductPhoto(c.Request.Context(), salonID, product.ID, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_upload_photo"})
		return
	}

	product.PhotoURL = url
	if err := h.db.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}
