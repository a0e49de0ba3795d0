package listing

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/hoofledger/hoofledger/internal/metadata"
	"github.com/hoofledger/hoofledger/internal/units"
)

// Form is the listing a seller submits: the animal, its auction terms and an
// optional photo
type Form struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Breed       string          `json:"breed" validate:"required,max=255"`
	Color       string          `json:"color" validate:"required,max=255"`
	BirthDate   string          `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Sire        string          `json:"sire" validate:"max=255"`
	Dam         string          `json:"dam" validate:"max=255"`
	Vaccines    string          `json:"vaccines" validate:"required"`
	Feeding     string          `json:"feeding" validate:"required"`
	Weight      decimal.Decimal `json:"weight" validate:"gte=0"`
	Description string          `json:"description"`

	StartingPrice decimal.Decimal `json:"starting_price" validate:"required,gt=0"`
	ReservePrice  decimal.Decimal `json:"reserve_price" validate:"gte=0"`
	DurationDays  int             `json:"duration_days" validate:"required,min=1,max=30"`

	// Photo is uploaded before the metadata document unless PhotoURI is set
	Photo    []byte `json:"-"`
	PhotoURI string `json:"photo_uri" validate:"omitempty,uri"`
}

// FormError lists the fields of a form that are missing or invalid
type FormError struct {
	Fields map[string]string
}

func (e *FormError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "please fill in all required fields: " + strings.Join(names, ", ")
}

var (
	formValidator     *validator.Validate
	formValidatorOnce sync.Once
)

func getFormValidator() *validator.Validate {
	formValidatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			d, ok := field.Interface().(decimal.Decimal)
			if !ok {
				return nil
			}
			f, _ := d.Float64()
			return f
		}, decimal.Decimal{})
		formValidator = v
	})
	return formValidator
}

// terms are the auction arguments in contract units
type terms struct {
	startingPrice *big.Int
	reservePrice  *big.Int
	duration      *big.Int
}

// Validate checks the form and converts its auction terms. Nothing is sent
// on-chain for a form that fails here.
func (f *Form) Validate() (*terms, error) {
	fields := map[string]string{}

	if err := getFormValidator().Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, err
		}
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				fields[fe.Field()] = fe.Field() + " must not be empty"
				continue
			}
			fields[fe.Field()] = fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
		}
	}

	startingPrice, err := units.ToBaseUnits(f.StartingPrice)
	if err != nil {
		fields["starting_price"] = err.Error()
	}
	reservePrice, err := units.ToBaseUnits(f.ReservePrice)
	if err != nil {
		fields["reserve_price"] = err.Error()
	}

	if len(fields) > 0 {
		return nil, &FormError{Fields: fields}
	}

	return &terms{
		startingPrice: startingPrice,
		reservePrice:  reservePrice,
		duration:      units.DaysToSeconds(f.DurationDays),
	}, nil
}

// weight returns the weight rounded to whole kilograms
func (f *Form) weight() *big.Int {
	if !f.Weight.IsPositive() {
		return big.NewInt(0)
	}
	return f.Weight.Round(0).BigInt()
}

func (f *Form) cattle() metadata.Cattle {
	return metadata.Cattle{
		Name:      f.Name,
		Breed:     f.Breed,
		Color:     f.Color,
		Weight:    f.weight().Uint64(),
		BirthDate: f.BirthDate,
		Sire:      f.Sire,
		Dam:       f.Dam,
		Vaccines:  f.Vaccines,
		Feeding:   f.Feeding,
	}
}
