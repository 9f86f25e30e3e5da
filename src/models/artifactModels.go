package models

// ArtifactMetadata holds one row per artifact pulled from the museum API.
// Every column except the id can be absent in the source record, so they
// are all pointers and stay NULL when missing.
type ArtifactMetadata struct {
	ID              *int     `json:"id" gorm:"column:id;primaryKey"`
	Title           *string  `json:"title" gorm:"column:title;type:text"`
	Culture         *string  `json:"culture" gorm:"column:culture;type:text"`
	Period          *string  `json:"period" gorm:"column:period;type:text"`
	Century         *string  `json:"century" gorm:"column:century;type:text"`
	Medium          *string  `json:"medium" gorm:"column:medium;type:text"`
	Dimensions      *string  `json:"dimensions" gorm:"column:dimensions;type:text"`
	Description     *string  `json:"description" gorm:"column:description;type:text"`
	Department      *string  `json:"department" gorm:"column:department;type:text"`
	Classification  *string  `json:"classification" gorm:"column:classification;type:text"`
	AccessionYear   *int     `json:"accessionyear" gorm:"column:accessionyear"`
	AccessionMethod *string  `json:"accessionmethod" gorm:"column:accessionmethod;type:text"`
}

func (ArtifactMetadata) TableName() string {
	return "artifact_metadata"
}

// ArtifactMedia holds the media counters for an artifact. The objectid
// references artifact_metadata.id but integrity is advisory: there is no
// uniqueness key, so re-ingesting a classification can duplicate rows.
type ArtifactMedia struct {
	ObjectID   *int `json:"objectid" gorm:"column:objectid;index"`
	ImageCount *int `json:"imagecount" gorm:"column:imagecount"`
	MediaCount *int `json:"mediacount" gorm:"column:mediacount"`
	ColorCount *int `json:"colorcount" gorm:"column:colorcount"`
	Rank       *int `json:"rank" gorm:"column:rank"`
	DateBegin  *int `json:"datebegin" gorm:"column:datebegin"`
	DateEnd    *int `json:"dateend" gorm:"column:dateend"`
}

func (ArtifactMedia) TableName() string {
	return "artifact_media"
}

// ArtifactColor holds one row per color-swatch entry of an artifact.
type ArtifactColor struct {
	ObjectID *int     `json:"objectid" gorm:"column:objectid;index"`
	Color    *string  `json:"color" gorm:"column:color;type:text"`
	Spectrum *string  `json:"spectrum" gorm:"column:spectrum;type:text"`
	Hue      *string  `json:"hue" gorm:"column:hue;type:text"`
	Percent  *float64 `json:"percent" gorm:"column:percent"`
	CSS3     *string  `json:"css3" gorm:"column:css3;type:text"`
}

func (ArtifactColor) TableName() string {
	return "artifact_colors"
}
