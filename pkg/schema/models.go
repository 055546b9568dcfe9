// Package schema provides database models for MeSH annotation tables.
// Table names are not fixed: every harvest run writes into tables whose
// names contain the run date, so models do not implement TableName and
// are always used together with a name from Tables.
package schema

import (
	"database/sql"
)

// Annotation links a PubMed article to a MeSH descriptor and, optionally,
// to the first qualifier of that heading.
type Annotation struct {
	// Year of publication as provided by the ID source.
	Year int `gorm:"column:year;type:integer"`

	// Pmid is the PubMed ID of the article.
	Pmid int `gorm:"column:pmid;type:integer;primaryKey;autoIncrement:false"`

	// DescriptorUI is MeSH descriptor identifier (for example D006801).
	DescriptorUI string `gorm:"column:descriptor_ui;type:varchar(50);primaryKey"`

	// QualifierUI is MeSH qualifier identifier (for example Q000628).
	// NULL when a heading has no qualifier.
	QualifierUI sql.NullString `gorm:"column:qualifier_ui;type:varchar(50)"`
}

// Descriptor is a MeSH descriptor vocabulary entry.
type Descriptor struct {
	UI   string `gorm:"column:descriptor_ui;type:varchar(50);primaryKey"`
	Text string `gorm:"column:descriptor_text;type:varchar(200);primaryKey"`
}

// Qualifier is a MeSH qualifier vocabulary entry.
type Qualifier struct {
	UI   string `gorm:"column:qualifier_ui;type:varchar(50);primaryKey"`
	Text string `gorm:"column:qualifier_text;type:varchar(200);primaryKey"`
}
