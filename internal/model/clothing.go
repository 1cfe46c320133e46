package model

import "time"

// ClothingType is a closed set of garment categories. The literals are the
// persisted values and must stay stable across releases.
type ClothingType string

const (
	TypeCamiseta   ClothingType = "camiseta"
	TypeCamisa     ClothingType = "camisa"
	TypePantalon   ClothingType = "pantalon"
	TypeShorts     ClothingType = "shorts"
	TypeVestido    ClothingType = "vestido"
	TypeFalda      ClothingType = "falda"
	TypeChaqueta   ClothingType = "chaqueta"
	TypeAbrigo     ClothingType = "abrigo"
	TypeSudadera   ClothingType = "sudadera"
	TypeJersey     ClothingType = "jersey"
	TypeZapatos    ClothingType = "zapatos"
	TypeAccesorios ClothingType = "accesorios"
	TypeOtro       ClothingType = "otro"
)

// typeSpec carries the per-variant capabilities that drive sizing behavior.
type typeSpec struct {
	label          string
	usesShoeSizing bool
	usesPantSizing bool
}

var clothingTypes = map[ClothingType]typeSpec{
	TypeCamiseta:   {label: "Camiseta"},
	TypeCamisa:     {label: "Camisa"},
	TypePantalon:   {label: "Pantalón", usesPantSizing: true},
	TypeShorts:     {label: "Shorts", usesPantSizing: true},
	TypeVestido:    {label: "Vestido"},
	TypeFalda:      {label: "Falda"},
	TypeChaqueta:   {label: "Chaqueta"},
	TypeAbrigo:     {label: "Abrigo"},
	TypeSudadera:   {label: "Sudadera"},
	TypeJersey:     {label: "Jersey"},
	TypeZapatos:    {label: "Zapatos", usesShoeSizing: true},
	TypeAccesorios: {label: "Accesorios"},
	TypeOtro:       {label: "Otro"},
}

// AllClothingTypes returns the catalogue in display order.
func AllClothingTypes() []ClothingType {
	return []ClothingType{
		TypeCamiseta, TypeCamisa, TypePantalon, TypeShorts, TypeVestido,
		TypeFalda, TypeChaqueta, TypeAbrigo, TypeSudadera, TypeJersey,
		TypeZapatos, TypeAccesorios, TypeOtro,
	}
}

// Valid reports whether t is one of the known garment categories.
func (t ClothingType) Valid() bool {
	_, ok := clothingTypes[t]
	return ok
}

// Label returns the display name for the type, or the raw value when unknown.
func (t ClothingType) Label() string {
	if spec, ok := clothingTypes[t]; ok {
		return spec.label
	}
	return string(t)
}

// UsesShoeSizing reports whether the type is sized on the shoe scale.
func (t ClothingType) UsesShoeSizing() bool {
	return clothingTypes[t].usesShoeSizing
}

// UsesPantSizing reports whether the type is sized on the numeric waist scale.
func (t ClothingType) UsesPantSizing() bool {
	return clothingTypes[t].usesPantSizing
}

// SizeOptions returns the size scale appropriate for the type.
func (t ClothingType) SizeOptions() []string {
	switch {
	case t.UsesShoeSizing():
		return ShoeSizes()
	case t.UsesPantSizing():
		return PantSizes()
	default:
		return Sizes()
	}
}

// Sizes returns the letter size scale.
func Sizes() []string {
	return []string{"XS", "S", "M", "L", "XL", "XXL"}
}

// ShoeSizes returns the EU shoe size scale.
func ShoeSizes() []string {
	return []string{
		"35", "36", "37", "38", "39", "40", "41", "42", "43", "44", "45", "46",
	}
}

// PantSizes returns the numeric waist size scale.
func PantSizes() []string {
	return []string{"28", "30", "32", "34", "36", "38", "40", "42", "44"}
}

// Colors returns the suggested color palette.
func Colors() []string {
	return []string{
		"negro", "blanco", "gris", "azul", "rojo", "verde",
		"amarillo", "naranja", "rosa", "morado", "marrón", "beige",
	}
}

// ClothingItem is a single owned garment. ID, CreatedAt and TimesWorn are
// assigned by the store, never by callers.
type ClothingItem struct {
	ID        string       `json:"id"`
	ImageURL  string       `json:"imageUrl"`
	Color     string       `json:"color"`
	Size      string       `json:"size"`
	Width     string       `json:"width,omitempty"`
	Length    string       `json:"length,omitempty"`
	Brand     string       `json:"brand"`
	Type      ClothingType `json:"type"`
	CreatedAt time.Time    `json:"createdAt"`
	LastWorn  *time.Time   `json:"lastWorn,omitempty"`
	TimesWorn int          `json:"timesWorn"`
}

// Outfit is a named grouping of clothing ids. Member ids are not required to
// exist; deleting an item prunes it from every outfit but the outfit itself
// survives, possibly empty.
type Outfit struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	ClothingIDs []string   `json:"clothingIds"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastWorn    *time.Time `json:"lastWorn,omitempty"`
}

// OutfitOfToday records which items were worn on one calendar day.
// Date is a YYYY-MM-DD string (UTC calendar day); at most one record exists
// per date.
type OutfitOfToday struct {
	Date        string   `json:"date"`
	ClothingIDs []string `json:"clothingIds"`
}

// DateKey returns the snapshot date key for the given instant.
func DateKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
