package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RegistrationType distinguishes a full signup from a lightweight
// game-only signup created just to attach an event entry.
type RegistrationType string

const (
	TypeMain     RegistrationType = "main"
	TypeGameOnly RegistrationType = "game_only"
)

// PaymentStatus is the settlement state of a game entry.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// AttemptOutcome is the recorded result of a single payment attempt.
type AttemptOutcome string

const (
	AttemptSuccess AttemptOutcome = "success"
	AttemptFailed  AttemptOutcome = "failed"
	AttemptPending AttemptOutcome = "pending"
)

// Registrant is a person registered for the fest. Email and PRN are
// unique across registrants; game-only signups get a synthesized
// placeholder email and "Not Specified" academics.
type Registrant struct {
	ID               uuid.UUID        `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name             string           `json:"name" gorm:"not null"`
	Email            string           `json:"email" gorm:"unique;not null"`
	Phone            string           `json:"phone" gorm:"not null"`
	PRN              string           `json:"prn" gorm:"column:prn;unique;not null"`
	Branch           string           `json:"branch" gorm:"not null"`
	Year             string           `json:"year" gorm:"not null"`
	RegistrationType RegistrationType `json:"registration_type" gorm:"type:text;not null;default:main"`
	CreatedAt        time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Registrant) TableName() string { return "registrations" }

// GameEntry is one registrant's enrollment in one competitive event.
// PaymentAmount is fixed from the pricing policy at creation time and
// never recomputed, even if the early-bird window closes afterwards.
type GameEntry struct {
	ID            uuid.UUID     `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	RegistrantID  uuid.UUID     `json:"registration_id" gorm:"column:registration_id;type:uuid;not null"`
	GameID        string        `json:"game_id" gorm:"not null"`
	GameName      string        `json:"game_name" gorm:"not null"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"type:text;not null;default:pending"`
	PaymentAmount int           `json:"payment_amount" gorm:"not null"`
	PaymentID     string        `json:"payment_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at" gorm:"autoCreateTime"`
	Registrant    Registrant    `json:"registrant,omitempty" gorm:"foreignKey:RegistrantID"`
}

func (GameEntry) TableName() string { return "game_registrations" }

// PaymentAttempt is an immutable log record of one attempt to settle a
// game entry. Retries append new rows; rows are never updated.
type PaymentAttempt struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	RegistrantID    uuid.UUID      `json:"registration_id" gorm:"column:registration_id;type:uuid;not null"`
	GameEntryID     uuid.UUID      `json:"game_registration_id" gorm:"column:game_registration_id;type:uuid;not null"`
	Gateway         string         `json:"payment_gateway" gorm:"column:payment_gateway;not null"`
	PaymentID       string         `json:"payment_id"`
	Amount          int            `json:"amount" gorm:"not null"`
	Currency        string         `json:"currency" gorm:"not null"`
	Status          AttemptOutcome `json:"status" gorm:"type:text;not null"`
	GatewayResponse string         `json:"gateway_response" gorm:"type:text"`
	CreatedAt       time.Time      `json:"created_at" gorm:"autoCreateTime"`
}

func (PaymentAttempt) TableName() string { return "payments" }

// Stats is the aggregate view over the three tables. Revenue counts
// only successful payment attempts.
type Stats struct {
	TotalRegistrants int `json:"total_registrations"`
	TotalGameEntries int `json:"game_registrations"`
	TotalRevenue     int `json:"total_revenue"`
}

// GameInfo describes one competitive event on the roster.
type GameInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
}

// Games is the fixed event roster for the fest.
var Games = []GameInfo{
	{ID: "blitzkrieg", Name: "Operation Blitzkrieg", Description: "Lightning warfare tactics and strategic planning", Price: 299},
	{ID: "normandy", Name: "D-Day Normandy", Description: "Beach assault and tactical coordination", Price: 299},
	{ID: "stalingrad", Name: "Battle of Stalingrad", Description: "Urban warfare and defensive strategies", Price: 299},
	{ID: "pacific", Name: "Pacific Theater", Description: "Naval combat and island hopping campaigns", Price: 299},
}

// GameByID resolves a roster entry; ok is false for unknown ids.
func GameByID(id string) (GameInfo, bool) {
	for _, g := range Games {
		if g.ID == id {
			return g, true
		}
	}
	return GameInfo{}, false
}

// Branches are the selectable academic branches. "Other" is a literal
// escape hatch and part of the accepted set.
var Branches = []string{
	"Computer Engineering",
	"Information Technology",
	"Electronics Engineering",
	"Mechanical Engineering",
	"Civil Engineering",
	"Electrical Engineering",
	"Chemical Engineering",
	"Other",
}

// Years are the selectable academic years.
var Years = []string{
	"First Year",
	"Second Year",
	"Third Year",
	"Fourth Year",
	"Graduate",
	"Other",
}

const (
	// NotSpecified fills branch/year for game-only signups.
	NotSpecified = "Not Specified"

	placeholderEmailDomain = "temp.technopedia14.com"
)

// PlaceholderEmail synthesizes the email for a game-only registrant
// that never supplied one. It stays unique as long as PRN is.
func PlaceholderEmail(prn string) string {
	return fmt.Sprintf("%s@%s", prn, placeholderEmailDomain)
}

// IsPlaceholderEmail reports whether an email was synthesized by
// PlaceholderEmail rather than supplied by the registrant.
func IsPlaceholderEmail(email string) bool {
	return strings.HasSuffix(email, "@"+placeholderEmailDomain)
}

// NewMainRegistrant builds a main-flow registrant from validated input.
func NewMainRegistrant(name, email, phone, prn, branch, year string) *Registrant {
	now := time.Now()
	return &Registrant{
		ID:               uuid.New(),
		Name:             name,
		Email:            email,
		Phone:            phone,
		PRN:              prn,
		Branch:           branch,
		Year:             year,
		RegistrationType: TypeMain,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// NewGameOnlyRegistrant builds the minimal registrant row created when
// a game-only signup has no prior registration for its PRN.
func NewGameOnlyRegistrant(name, phone, prn string) *Registrant {
	now := time.Now()
	return &Registrant{
		ID:               uuid.New(),
		Name:             name,
		Email:            PlaceholderEmail(prn),
		Phone:            phone,
		PRN:              prn,
		Branch:           NotSpecified,
		Year:             NotSpecified,
		RegistrationType: TypeGameOnly,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
