package dto

import "github.com/BruksfildServices01/customer-service/internal/models"

// CustomerDTO is the public projection of a customer.
type CustomerDTO struct {
	ID    uint    `json:"id"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
	CPF   *string `json:"cpf"`
}

func FromCustomer(c *models.Customer) CustomerDTO {
	return CustomerDTO{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		CPF:   c.CPF,
	}
}

func FromCustomers(cs []models.Customer) []CustomerDTO {
	out := make([]CustomerDTO, 0, len(cs))
	for i := range cs {
		out = append(out, FromCustomer(&cs[i]))
	}
	return out
}
