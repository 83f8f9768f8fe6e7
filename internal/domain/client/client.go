package client

import (
	"regexp"
	"strings"
	"time"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Client represents a client company in the CRM
// It is the aggregate root for client-related operations
type Client struct {
	shared.BaseAggregateRoot
	CompanyName        string
	ContactPersonName  string
	Email              string
	Phone              string
	Address            string
	Industry           string
	PlatformPreference string
	Notes              string
	AssignedUserID     *uuid.UUID
}

// NewClient creates a new client with required fields
func NewClient(companyName, contactPersonName, email string) (*Client, error) {
	if err := validateCompanyName(companyName); err != nil {
		return nil, err
	}
	if contactPersonName != "" && len(contactPersonName) > 200 {
		return nil, shared.NewDomainError("INVALID_CONTACT_NAME", "Contact person name cannot exceed 200 characters")
	}
	if email != "" {
		if err := validateClientEmail(email); err != nil {
			return nil, err
		}
		email = strings.ToLower(strings.TrimSpace(email))
	}

	client := &Client{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CompanyName:       strings.TrimSpace(companyName),
		ContactPersonName: strings.TrimSpace(contactPersonName),
		Email:             email,
	}

	client.AddDomainEvent(NewClientCreatedEvent(client))

	return client, nil
}

// Update updates the client's basic information
func (c *Client) Update(companyName, contactPersonName string) error {
	if err := validateCompanyName(companyName); err != nil {
		return err
	}
	if contactPersonName != "" && len(contactPersonName) > 200 {
		return shared.NewDomainError("INVALID_CONTACT_NAME", "Contact person name cannot exceed 200 characters")
	}

	c.CompanyName = strings.TrimSpace(companyName)
	c.ContactPersonName = strings.TrimSpace(contactPersonName)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewClientUpdatedEvent(c))

	return nil
}

// SetContact sets the client's contact information
func (c *Client) SetContact(email, phone, address string) error {
	if email != "" {
		if err := validateClientEmail(email); err != nil {
			return err
		}
		email = strings.ToLower(strings.TrimSpace(email))
	}
	if phone != "" && len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}
	if address != "" && len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}

	c.Email = email
	c.Phone = strings.TrimSpace(phone)
	c.Address = address
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetBusinessProfile sets industry and platform preference
func (c *Client) SetBusinessProfile(industry, platformPreference string) error {
	if industry != "" && len(industry) > 100 {
		return shared.NewDomainError("INVALID_INDUSTRY", "Industry cannot exceed 100 characters")
	}
	if platformPreference != "" && len(platformPreference) > 100 {
		return shared.NewDomainError("INVALID_PLATFORM", "Platform preference cannot exceed 100 characters")
	}

	c.Industry = strings.TrimSpace(industry)
	c.PlatformPreference = strings.TrimSpace(platformPreference)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetNotes sets the client's free-form notes
func (c *Client) SetNotes(notes string) {
	c.Notes = notes
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// AssignTo assigns the client to a user
func (c *Client) AssignTo(userID *uuid.UUID) {
	c.AssignedUserID = userID
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewClientAssignedEvent(c, userID))
}

// Validation functions

func validateCompanyName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot exceed 200 characters")
	}
	return nil
}

func validateClientEmail(email string) error {
	email = strings.TrimSpace(email)
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}

	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}

	return nil
}
