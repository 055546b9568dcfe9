// Package entrez describes the part of NCBI E-utilities used by gnmesh:
// posting PubMed IDs to the history server (EPost) and retrieving their
// records from there (EFetch).
package entrez

import (
	"bytes"
	"context"
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/gnames/gnmesh/pkg/mesh"
)

// Fetcher retrieves PubMed records for a list of PubMed IDs.
type Fetcher interface {
	// Post stores ids on the history server with one EPost request.
	Post(ctx context.Context, ids []int) (History, error)

	// Fetch retrieves all records referenced by History. Records are
	// requested in pages, every page is parsed and merged into the
	// result.
	Fetch(ctx context.Context, hist History) (*mesh.ArticleSet, error)

	// Records posts ids to the history server and fetches all their
	// records. Empty ids return an empty set without remote calls.
	Records(ctx context.Context, ids []int) (*mesh.ArticleSet, error)
}

// History is a reference to IDs stored on the history server.
type History struct {
	WebEnv   string
	QueryKey string

	// Count is the number of IDs accepted by the server.
	Count int

	// Invalid contains IDs rejected by the server.
	Invalid []string
}

// PostResult is the XML acknowledgment of an EPost request.
type PostResult struct {
	XMLName    xml.Name `xml:"ePostResult"`
	QueryKey   string   `xml:"QueryKey"`
	WebEnv     string   `xml:"WebEnv"`
	Errors     []string `xml:"ERROR"`
	InvalidIDs []string `xml:"InvalidIdList>Id"`
}

// ParsePost reads EPost acknowledgment for a request that posted count
// IDs.
func ParsePost(data []byte, count int) (History, error) {
	var res History
	var pr PostResult
	if err := xml.Unmarshal(data, &pr); err != nil {
		return res, ParseError("epost", err)
	}

	key := strings.TrimSpace(pr.QueryKey)
	env := strings.TrimSpace(pr.WebEnv)
	if key == "" || env == "" {
		if len(pr.Errors) > 0 {
			return res, ServiceError("epost", strings.Join(pr.Errors, "; "))
		}
		return res, MissingHistoryError(key == "", env == "")
	}

	res = History{
		WebEnv:   env,
		QueryKey: key,
		Count:    max(count-len(pr.InvalidIDs), 0),
		Invalid:  pr.InvalidIDs,
	}
	return res, nil
}

// Page is a slice of records on the history server.
type Page struct {
	Start int
	Max   int
}

// Pages splits count records into pages of at most size records.
func Pages(count, size int) []Page {
	if count <= 0 || size <= 0 {
		return nil
	}
	res := make([]Page, 0, count/size+1)
	for start := 0; start < count; start += size {
		res = append(res, Page{Start: start, Max: min(size, count-start)})
	}
	return res
}

// UniqueIDs removes repeated IDs keeping the order of their first
// occurrence. The history server stores every UID once, so paging
// has to be computed from the unique IDs.
func UniqueIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	res := make([]int, 0, len(ids))
	for _, v := range ids {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		res = append(res, v)
	}
	return res
}

// JoinIDs converts IDs to the comma-separated form used by E-utilities.
func JoinIDs(ids []int) string {
	strs := make([]string, len(ids))
	for i, v := range ids {
		strs[i] = strconv.Itoa(v)
	}
	return strings.Join(strs, ",")
}

// FetchResult is returned by EFetch instead of records when the request
// cannot be served, for example when WebEnv has expired.
type FetchResult struct {
	XMLName xml.Name `xml:"eFetchResult"`
	Errors  []string `xml:"ERROR"`
}

// CheckFetch returns ServiceError if EFetch response is an error
// document.
func CheckFetch(data []byte) error {
	if !bytes.Contains(data, []byte("<eFetchResult")) {
		return nil
	}
	var fr FetchResult
	if err := xml.Unmarshal(data, &fr); err != nil {
		return ParseError("efetch", err)
	}
	reason := strings.Join(fr.Errors, "; ")
	if reason == "" {
		reason = "empty eFetchResult"
	}
	return ServiceError("efetch", reason)
}
