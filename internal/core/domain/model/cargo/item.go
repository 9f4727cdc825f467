package cargo

import (
	"errors"
	"fmt"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when using a zero-value Item.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError(
	"item must be created via NewItem constructor")

// Dimensions are the physical measurements of a single unit.
// All sides must be non-negative; the unit determines conversion to meters.
type Dimensions struct {
	Length float64
	Width  float64
	Height float64
	Unit   DimensionUnit
}

// Validate checks sides are non-negative and the unit is recognized.
func (d Dimensions) Validate() error {
	if err := d.Unit.Validate(); err != nil {
		return err
	}
	if d.Length < 0 || d.Width < 0 || d.Height < 0 {
		return errs.NewValueIsInvalidErrorWithCause("dimensions",
			fmt.Errorf("sides must be non-negative, got %gx%gx%g", d.Length, d.Width, d.Height))
	}
	return nil
}

// VolumeM3 returns the volume of a single unit in cubic meters.
func (d Dimensions) VolumeM3() float64 {
	factor := d.Unit.toMeters()
	return d.Length * factor * d.Width * factor * d.Height * factor
}

// Weight is the mass of a single unit.
type Weight struct {
	Value float64
	Unit  WeightUnit
}

// Validate checks the value is non-negative and the unit is recognized.
func (w Weight) Validate() error {
	if err := w.Unit.Validate(); err != nil {
		return err
	}
	if w.Value < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%g is negative", w.Value))
	}
	return nil
}

// Kilograms returns the weight of a single unit in kilograms.
func (w Weight) Kilograms() float64 {
	return w.Value * w.Unit.toKilograms()
}

// Flags are the handling attributes of an item. They are additive, not
// mutually exclusive: an item can be fragile and temperature-controlled at
// once.
type Flags struct {
	Fragile               bool
	Hazardous             bool
	TemperatureControlled bool
	InsuranceRequired     bool
}

// Item is a line of goods on a quote or shipment: a category, a quantity of
// identical units, per-unit dimensions and weight, a declared value per unit,
// and handling flags.
//
// Item is an immutable value object. Totals over an item list are computed by
// the package-level TotalWeightKg, TotalVolumeM3, and TotalValue functions.
type Item struct { //nolint:recvcheck //using for validation
	category      Category
	quantity      int
	dimensions    Dimensions
	weight        Weight
	declaredValue Money
	flags         Flags

	guard guard.ConstructorGuard
}

// NewItem creates a validated Item. Quantity must be at least 1; dimensions,
// weight, and declared value must be non-negative with recognized units.
func NewItem(
	category Category,
	quantity int,
	dimensions Dimensions,
	weight Weight,
	declaredValue Money,
	flags Flags,
) (Item, error) {
	item := Item{
		flags: flags,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setCategory(category),
		item.setQuantity(quantity),
		item.setDimensions(dimensions),
		item.setWeight(weight),
		item.setDeclaredValue(declaredValue),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate checks that the item was created through its constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Category returns the goods classification.
func (i Item) Category() Category {
	return i.category
}

// Quantity returns the number of identical units.
func (i Item) Quantity() int {
	return i.quantity
}

// Dimensions returns the per-unit measurements.
func (i Item) Dimensions() Dimensions {
	return i.dimensions
}

// Weight returns the per-unit weight.
func (i Item) Weight() Weight {
	return i.weight
}

// DeclaredValue returns the per-unit declared value.
func (i Item) DeclaredValue() Money {
	return i.declaredValue
}

// Flags returns the handling attributes.
func (i Item) Flags() Flags {
	return i.flags
}

// TotalWeightKg returns the quantity-weighted weight in kilograms.
func (i Item) TotalWeightKg() float64 {
	return i.weight.Kilograms() * float64(i.quantity)
}

// TotalVolumeM3 returns the quantity-weighted volume in cubic meters.
func (i Item) TotalVolumeM3() float64 {
	return i.dimensions.VolumeM3() * float64(i.quantity)
}

// TotalValue returns the quantity-weighted declared value amount.
func (i Item) TotalValue() float64 {
	return i.declaredValue.Amount() * float64(i.quantity)
}

func (i *Item) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	i.category = category
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not at least 1", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setDimensions(dimensions Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}
	i.dimensions = dimensions
	return nil
}

func (i *Item) setWeight(weight Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	i.weight = weight
	return nil
}

func (i *Item) setDeclaredValue(declaredValue Money) error {
	if err := declaredValue.Validate(); err != nil {
		return err
	}
	i.declaredValue = declaredValue
	return nil
}

// TotalWeightKg sums the quantity-weighted weight of all items in kilograms.
// Always recomputed from the current item list, never stored.
func TotalWeightKg(items []Item) float64 {
	var total float64
	for _, item := range items {
		total += item.TotalWeightKg()
	}
	return total
}

// TotalVolumeM3 sums the quantity-weighted volume of all items in cubic meters.
func TotalVolumeM3(items []Item) float64 {
	var total float64
	for _, item := range items {
		total += item.TotalVolumeM3()
	}
	return total
}

// TotalValue sums the quantity-weighted declared value of all items.
func TotalValue(items []Item) float64 {
	var total float64
	for _, item := range items {
		total += item.TotalValue()
	}
	return total
}

// AnyFragile reports whether any item carries the fragile flag.
func AnyFragile(items []Item) bool {
	for _, item := range items {
		if item.Flags().Fragile {
			return true
		}
	}
	return false
}

// AnyHazardous reports whether any item carries the hazardous flag.
func AnyHazardous(items []Item) bool {
	for _, item := range items {
		if item.Flags().Hazardous {
			return true
		}
	}
	return false
}
