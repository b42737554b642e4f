package entity

type EventTrack struct {
	ID           int64    `json:"id" db:"id"`
	Name         string   `json:"name" db:"name"`
	Description  string   `json:"description" db:"description"`
	CoverImage   ImageRef `json:"-" db:"cover_image"`
	OverlayImage ImageRef `json:"-" db:"overlay_image"`
}

// TrackPatch carries the fields of a partial track update. A field left
// unset is not touched; a field set to null clears the column.
type TrackPatch struct {
	Name         Field[string]
	Description  Field[string]
	CoverImage   Field[ImageRef]
	OverlayImage Field[ImageRef]
}

func (p *TrackPatch) Empty() bool {
	return !p.Name.Set && !p.Description.Set && !p.CoverImage.Set && !p.OverlayImage.Set
}
