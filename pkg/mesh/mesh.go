package mesh

import (
	"strconv"
	"strings"
)

// Term is a MeSH vocabulary entry, a descriptor or a qualifier.
type Term struct {
	UI   string
	Text string
}

// Heading is a descriptor with an optional qualifier. Only the first
// qualifier of a MeshHeading is kept.
type Heading struct {
	Descriptor Term
	Qualifier  Term
}

// HasQualifier is true if the heading has a qualifier.
func (h Heading) HasQualifier() bool {
	return h.Qualifier.UI != ""
}

// Record keeps MeSH headings of one article.
type Record struct {
	PMID int

	// HasMesh is false when the article has no MeshHeadingList. Such
	// articles are skipped by loaders.
	HasMesh bool

	Headings []Heading
}

// Extract converts decoded articles to records, keeping the order of the
// articles. Headings without descriptor UI are ignored.
func Extract(set *ArticleSet) ([]Record, error) {
	if set == nil {
		return nil, nil
	}
	res := make([]Record, 0, len(set.Articles))
	for _, v := range set.Articles {
		pmidStr := strings.TrimSpace(v.Citation.PMID.Value)
		pmid, err := strconv.Atoi(pmidStr)
		if err != nil {
			return nil, PMIDError(pmidStr, err)
		}

		rec := Record{PMID: pmid}
		if v.Citation.MeshHeadingList != nil {
			rec.HasMesh = true
			rec.Headings = headings(v.Citation.MeshHeadingList.Headings)
		}
		res = append(res, rec)
	}
	return res, nil
}

func headings(mhs []MeshHeading) []Heading {
	res := make([]Heading, 0, len(mhs))
	for _, v := range mhs {
		h := Heading{Descriptor: term(v.Descriptor)}
		if h.Descriptor.UI == "" {
			continue
		}
		if len(v.Qualifiers) > 0 {
			h.Qualifier = term(v.Qualifiers[0])
		}
		res = append(res, h)
	}
	return res
}

func term(n Name) Term {
	return Term{
		UI:   strings.TrimSpace(n.UI),
		Text: strings.TrimSpace(n.Text),
	}
}
