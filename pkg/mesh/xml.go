// Package mesh reads MeSH headings from PubMed EFetch XML.
// It is a pure package: data arrive as bytes and leave as plain records.
package mesh

import (
	"bytes"
	"encoding/xml"
)

// ArticleSet is the root of an EFetch response in XML mode. Book records
// (PubmedBookArticle) carry no MeSH headings and are not decoded.
type ArticleSet struct {
	XMLName  xml.Name  `xml:"PubmedArticleSet"`
	Articles []Article `xml:"PubmedArticle"`
}

// Article is one PubmedArticle element.
type Article struct {
	Citation Citation `xml:"MedlineCitation"`
}

// Citation contains the PubMed ID and the MeSH heading list. The list is
// nil when an article was not indexed with MeSH.
type Citation struct {
	PMID            PMID             `xml:"PMID"`
	MeshHeadingList *MeshHeadingList `xml:"MeshHeadingList"`
}

type PMID struct {
	Version string `xml:"Version,attr"`
	Value   string `xml:",chardata"`
}

type MeshHeadingList struct {
	Headings []MeshHeading `xml:"MeshHeading"`
}

// MeshHeading has one descriptor and zero or more qualifiers. Elements
// are matched by their tag names, their order does not matter.
type MeshHeading struct {
	Descriptor Name   `xml:"DescriptorName"`
	Qualifiers []Name `xml:"QualifierName"`
}

// Name is a MeSH descriptor or qualifier reference.
type Name struct {
	UI         string `xml:"UI,attr"`
	MajorTopic string `xml:"MajorTopicYN,attr"`
	Text       string `xml:",chardata"`
}

// Parse decodes one EFetch XML document.
func Parse(data []byte) (*ArticleSet, error) {
	var res ArticleSet
	dec := xml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&res); err != nil {
		return nil, ParseError(err)
	}
	return &res, nil
}

// Merge appends articles of another set, used to join EFetch pages.
func (s *ArticleSet) Merge(other *ArticleSet) {
	if other == nil {
		return
	}
	s.Articles = append(s.Articles, other.Articles...)
}
