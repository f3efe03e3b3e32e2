package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/EspacoVitaServices/salon-scheduler/internal/httpresp"
	"github.com/EspacoVitaServices/salon-scheduler/internal/models"
)

type EmployeeHandler struct {
	db *gorm.DB
}

func NewEmployeeHandler(db *gorm.DB) *EmployeeHandler {
	return &EmployeeHandler{db: db}
}

func (h *EmployeeHandler) List(c *gin.Context) {
	salonID, _ := currentIdentity(c)

	var employees []models.Employee
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("name ASC").
		Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_employees"})
		return
	}

	httpresp.List(c, employees)
}

type CreateEmployeeRequest struct {
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
	Email string `json:"email"`

	Salary decimal.Decimal `json:"salary"`

	// 0 a 100; ausente usa o percentual padrão na finalização
	CommissionPercent *decimal.Decimal `json:"commission_percent"`
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	salonID, _ := currentIdentity(c)

	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	if req.CommissionPercent != nil {
		p := *req.CommissionPercent
		if p.IsNegative() || p.GreaterThan(decimal.NewFromInt(100)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_commission_percent"})
			return
		}
	}

	employee := models.Employee{
		SalonID:           salonID,
		Name:              req.Name,
		Role:              req.Role,
		Phone:             req.Phone,
		Email:             req.Email,
		Salary:            req.Salary,
		CommissionPercent: req.CommissionPercent,
	}

	if err := h.db.Create(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_employee"})
		return
	}

	c.JSON(http.StatusCreated, employee)
}

type UpdateEmployeeRequest struct {
	Name  *string `json:"name"`
	Role  *string `json:"role"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`

	Salary            *decimal.Decimal `json:"salary"`
	CommissionPercent *decimal.Decimal `json:"commission_percent"`
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	salonID, _ := currentIdentity(c)
	id := c.Param("id")

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	var employee models.Employee
	if err := h.db.
		Where("salon_id = ?", salonID).
		First(&employee, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee_not_found"})
		return
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Role != nil {
		employee.Role = *req.Role
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Salary != nil {
		employee.Salary = *req.Salary
	}
	if req.CommissionPercent != nil {
		p := *req.CommissionPercent
		if p.IsNegative() || p.GreaterThan(decimal.NewFromInt(100)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_commission_percent"})
			return
		}
		employee.CommissionPercent = req.CommissionPercent
	}

	if err := h.db.Save(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_employee"})
		return
	}

	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	salonID, _ := currentIdentity(c)
	id := c.Param("id")

	result := h.db.
		Where("salon_id = ?", salonID).
		Delete(&models.Employee{}, id)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_employee"})
		return
	}

	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee_not_found"})
		return
	}

	c.Status(http.StatusNoContent)
}
