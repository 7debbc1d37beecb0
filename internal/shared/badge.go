package shared

// BadgeVariant names a display style for a status badge.
type BadgeVariant string

const (
	BadgeDefault     BadgeVariant = "default"
	BadgeSecondary   BadgeVariant = "secondary"
	BadgeDestructive BadgeVariant = "destructive"
	BadgeSuccess     BadgeVariant = "success"
	BadgeWarning     BadgeVariant = "warning"
)

// Badge is the display metadata attached to an enumeration value.
type Badge struct {
	Variant BadgeVariant `json:"variant"`
	Label   string       `json:"label"`
}
