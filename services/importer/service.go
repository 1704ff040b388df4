package importer

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"aleppo/lib/bookmarklet"
	"aleppo/lib/recipe"
	"aleppo/lib/scrapers/recipepage"
	"aleppo/services/importer/db"

	"github.com/antzucaro/matchr"
	"github.com/mazen160/go-random"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	_ "modernc.org/sqlite"
)

var tracer = otel.Tracer("services/importer")

const ErrNoRecipeSchema = "No Recipe schema found on this page"

// titles closer than this (Jaro-Winkler) count as probable duplicates
const duplicateTitleThreshold = 0.93

type Service struct {
	db      *sql.DB
	qry     *db.Queries
	scraper *recipepage.Client
	appUrl  string
}

func NewService(ctx context.Context, database *sql.DB, appUrl string) (*Service, error) {
	scraper, err := recipepage.NewClient()
	if err != nil {
		return nil, err
	}
	return &Service{
		db:      database,
		qry:     db.New(database),
		scraper: scraper,
		appUrl:  appUrl,
	}, nil
}

// ImportResult is returned by both import flows. ParseError is a
// user-facing diagnostic; a non-empty one still comes with an ImportID
// since failed attempts are recorded too.
type ImportResult struct {
	ImportID   string                `json:"importId"`
	Recipe     *recipe.ScrapedRecipe `json:"recipe,omitempty"`
	ParseError string                `json:"parseError,omitempty"`
}

// ImportURL fetches the page server-side and records the attempt.
func (s *Service) ImportURL(ctx context.Context, userKey, sourceUrl string) (ImportResult, error) {
	ctx, span := tracer.Start(ctx, "service:ImportURL")
	defer span.End()

	result := s.scraper.ScrapeURL(ctx, sourceUrl)

	status := "parsed"
	if result.Err != "" {
		status = "failed"
	}

	id, err := s.recordImport(ctx, recordImportParams{
		UserKey:      userKey,
		ImportType:   "url",
		SourceUrl:    sourceUrl,
		RawPayload:   result.RawPayload,
		Status:       status,
		ErrorMessage: result.Err,
		Recipe:       result.Recipe,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to record import")
		return ImportResult{}, err
	}

	return ImportResult{
		ImportID:   id,
		Recipe:     result.Recipe,
		ParseError: result.Err,
	}, nil
}

// ImportPayload takes structured data collected in the user's browser
// by the bookmarklet and runs the same extraction as the url flow.
func (s *Service) ImportPayload(ctx context.Context, userKey string, payload bookmarklet.Payload) (ImportResult, error) {
	ctx, span := tracer.Start(ctx, "service:ImportPayload")
	defer span.End()

	meta := recipe.Meta{
		PageTitle: payload.Title,
		OgImage:   payload.OgImage,
		SiteName:  payload.SiteName,
	}
	scraped, ok := recipe.ExtractFromJSONLD(payload.JSONLD, meta)

	status := "parsed"
	errMessage := ""
	if !ok {
		status = "failed"
		errMessage = ErrNoRecipeSchema
		scraped = nil
	}

	rawPayload := map[string]any{
		"jsonld":   payload.JSONLD,
		"url":      payload.URL,
		"title":    payload.Title,
		"ogImage":  payload.OgImage,
		"siteName": payload.SiteName,
	}

	id, err := s.recordImport(ctx, recordImportParams{
		UserKey:      userKey,
		ImportType:   "bookmarklet",
		SourceUrl:    payload.URL,
		RawPayload:   rawPayload,
		Status:       status,
		ErrorMessage: errMessage,
		Recipe:       scraped,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to record import")
		return ImportResult{}, err
	}

	return ImportResult{
		ImportID:   id,
		Recipe:     scraped,
		ParseError: errMessage,
	}, nil
}

type recordImportParams struct {
	UserKey      string
	ImportType   string
	SourceUrl    string
	RawPayload   map[string]any
	Status       string
	ErrorMessage string
	Recipe       *recipe.ScrapedRecipe
}

func (s *Service) recordImport(ctx context.Context, arg recordImportParams) (string, error) {
	publicId, err := random.String(8)
	if err != nil {
		return "", err
	}

	var rawPayload sql.NullString
	if arg.RawPayload != nil {
		encoded, err := json.Marshal(arg.RawPayload)
		if err != nil {
			return "", err
		}
		rawPayload = sql.NullString{String: string(encoded), Valid: true}
	}

	var title sql.NullString
	if arg.Recipe != nil && arg.Recipe.Title != "" {
		title = sql.NullString{String: arg.Recipe.Title, Valid: true}
	}
	var sourceUrl sql.NullString
	if arg.SourceUrl != "" {
		sourceUrl = sql.NullString{String: arg.SourceUrl, Valid: true}
	}
	var errMessage sql.NullString
	if arg.ErrorMessage != "" {
		errMessage = sql.NullString{String: arg.ErrorMessage, Valid: true}
	}

	err = s.qry.CreateImport(ctx, db.CreateImportParams{
		PublicID:     publicId,
		UserKey:      arg.UserKey,
		ImportType:   arg.ImportType,
		SourceUrl:    sourceUrl,
		RawPayload:   rawPayload,
		Status:       arg.Status,
		ErrorMessage: errMessage,
		Title:        title,
		CreatedAt:    time.Now().Unix(),
	})
	if err != nil {
		return "", err
	}
	return publicId, nil
}

// ImportRecord is the audit view of one attempt.
type ImportRecord struct {
	ImportID     string `json:"importId"`
	ImportType   string `json:"importType"`
	SourceUrl    string `json:"sourceUrl,omitempty"`
	Status       string `json:"status"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	Title        string `json:"title,omitempty"`
	CreatedAt    int64  `json:"createdAt"`
}

func (s *Service) GetImport(ctx context.Context, userKey, importId string) (ImportRecord, error) {
	ctx, span := tracer.Start(ctx, "service:GetImport")
	defer span.End()

	row, err := s.qry.GetImportByPublicId(ctx, importId)
	if err != nil {
		return ImportRecord{}, err
	}
	// records are scoped per user, another user's id behaves like a miss
	if row.UserKey != userKey {
		return ImportRecord{}, sql.ErrNoRows
	}

	return ImportRecord{
		ImportID:     row.PublicID,
		ImportType:   row.ImportType,
		SourceUrl:    row.SourceUrl.String,
		Status:       row.Status,
		ErrorMessage: row.ErrorMessage.String,
		Title:        row.Title.String,
		CreatedAt:    row.CreatedAt,
	}, nil
}

func (s *Service) ListImports(ctx context.Context, userKey string) ([]ImportRecord, error) {
	ctx, span := tracer.Start(ctx, "service:ListImports")
	defer span.End()

	rows, err := s.qry.GetImportsByUser(ctx, userKey)
	if err != nil {
		return nil, err
	}
	records := []ImportRecord{}
	for _, row := range rows {
		records = append(records, ImportRecord{
			ImportID:     row.PublicID,
			ImportType:   row.ImportType,
			SourceUrl:    row.SourceUrl.String,
			Status:       row.Status,
			ErrorMessage: row.ErrorMessage.String,
			Title:        row.Title.String,
			CreatedAt:    row.CreatedAt,
		})
	}
	return records, nil
}

// DuplicateMatch reports why an earlier import looks like the same
// recipe: an exact source url hit or a near-identical title.
type DuplicateMatch struct {
	ImportID string `json:"importId"`
	Title    string `json:"title,omitempty"`
	Reason   string `json:"reason"`
}

// CheckDuplicate looks for an earlier import of the same recipe, first
// by exact source url, then by fuzzy title match over the user's
// parsed imports.
func (s *Service) CheckDuplicate(ctx context.Context, userKey, sourceUrl, title string) (*DuplicateMatch, error) {
	ctx, span := tracer.Start(ctx, "service:CheckDuplicate")
	defer span.End()

	if sourceUrl != "" {
		row, err := s.qry.GetImportBySourceUrl(ctx, db.GetImportBySourceUrlParams{
			UserKey:   userKey,
			SourceUrl: sql.NullString{String: sourceUrl, Valid: true},
		})
		if err == nil {
			return &DuplicateMatch{
				ImportID: row.PublicID,
				Title:    row.Title.String,
				Reason:   "url",
			}, nil
		}
		if err != sql.ErrNoRows {
			return nil, err
		}
	}

	if title == "" {
		return nil, nil
	}

	rows, err := s.qry.GetImportTitlesByUser(ctx, userKey)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if !row.Title.Valid {
			continue
		}
		score := matchr.JaroWinkler(strings.ToLower(title), strings.ToLower(row.Title.String), false)
		if score >= duplicateTitleThreshold {
			return &DuplicateMatch{
				ImportID: row.PublicID,
				Title:    row.Title.String,
				Reason:   "title",
			}, nil
		}
	}
	return nil, nil
}

// Bookmarklet returns the javascript: url for this deployment.
func (s *Service) Bookmarklet() (string, error) {
	return bookmarklet.Build(s.appUrl)
}
