package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/cafehub/internal/domain/entity"
	repo "github.com/oksasatya/cafehub/internal/domain/repository"
	"github.com/oksasatya/cafehub/pkg/helpers"
)

// CafeService owns the cafe/comment entity store plus the photo blob
// store and the search index. Authorization is the caller's job: the
// handlers gate mutations through Authorize before calling in here.
type CafeService struct {
	Cafes        repo.CafeRepository
	Comments     repo.CommentRepository
	GCS          *storage.Client
	GCSBucket    string
	ES           *elasticsearch.Client
	ESCafesIndex string
	Logger       *logrus.Logger
}

func NewCafeService(cafes repo.CafeRepository, comments repo.CommentRepository, gcs *storage.Client, gcsBucket string, es *elasticsearch.Client, esCafesIndex string, logger *logrus.Logger) *CafeService {
	return &CafeService{
		Cafes:        cafes,
		Comments:     comments,
		GCS:          gcs,
		GCSBucket:    gcsBucket,
		ES:           es,
		ESCafesIndex: esCafesIndex,
		Logger:       logger,
	}
}

type CreateCafeInput struct {
	Name         string
	City         string
	Address      string
	HasSockets   entity.Amenity
	HasToilet    entity.Amenity
	HasWiFi      entity.Amenity
	CanTakeCalls entity.Amenity
	Seats        string
	CoffeePrice  string
	Description  string
	ImageURL     string
}

// CreateCafe inserts a cafe owned by ownerID. A name collision comes back
// as ErrDuplicateName, whether caught by the unique constraint or by a
// concurrent insert.
func (s *CafeService) CreateCafe(ctx context.Context, in CreateCafeInput, ownerID int64) (*entity.Cafe, error) {
	c := &entity.Cafe{
		Name:         strings.TrimSpace(in.Name),
		City:         in.City,
		Address:      in.Address,
		HasSockets:   in.HasSockets,
		HasToilet:    in.HasToilet,
		HasWiFi:      in.HasWiFi,
		CanTakeCalls: in.CanTakeCalls,
		Seats:        in.Seats,
		CoffeePrice:  in.CoffeePrice,
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		OwnerID:      ownerID,
	}
	if err := s.Cafes.Create(ctx, c); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	s.indexCafe(ctx, c)
	return c, nil
}

// ListCafes returns cafes ordered by id ascending. limit <= 0 returns all.
func (s *CafeService) ListCafes(ctx context.Context, limit int) ([]entity.Cafe, error) {
	return s.Cafes.List(ctx, limit)
}

// ListCafesForUser returns the cafes owned by a user.
func (s *CafeService) ListCafesForUser(ctx context.Context, ownerID int64) ([]entity.Cafe, error) {
	return s.Cafes.ListByOwner(ctx, ownerID)
}

func (s *CafeService) GetCafe(ctx context.Context, id int64) (*entity.Cafe, error) {
	c, err := s.Cafes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// DeleteCafe removes a cafe and its comments (cascade). Callers must have
// passed the IsAdmin gate before reaching this.
func (s *CafeService) DeleteCafe(ctx context.Context, id int64) error {
	if err := s.Cafes.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.removeCafeDoc(ctx, id)
	return nil
}

// AddComment records a comment on a cafe. A vanished cafe surfaces as
// ErrNotFound via the foreign key.
func (s *CafeService) AddComment(ctx context.Context, cafeID int64, body string, ownerID int64) (*entity.Comment, error) {
	c := &entity.Comment{
		Body:    strings.TrimSpace(body),
		OwnerID: ownerID,
		CafeID:  cafeID,
	}
	if err := s.Comments.Create(ctx, c); err != nil {
		if errors.Is(err, repo.ErrMissingReference) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// ListComments returns a cafe's comments in insertion order.
func (s *CafeService) ListComments(ctx context.Context, cafeID int64) ([]entity.Comment, error) {
	return s.Comments.ListByCafe(ctx, cafeID)
}

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadPhoto stores a cafe photo in the blob store under a generated
// object name. The client-supplied filename contributes only its
// extension, and only from a small whitelist.
func (s *CafeService) UploadPhoto(ctx context.Context, r io.Reader, filename, contentType string) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("photo storage not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExt[ext] {
		return "", errors.New("unsupported image type")
	}
	objectPath := filepath.ToSlash(filepath.Join("cafes", uuid.NewString()+ext))
	return helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
}

func (s *CafeService) indexCafe(ctx context.Context, c *entity.Cafe) {
	if s.ES == nil || s.ESCafesIndex == "" {
		return
	}
	doc := map[string]any{
		"id":          c.ID,
		"name":        c.Name,
		"city":        c.City,
		"address":     c.Address,
		"description": c.Description,
		"created_at":  c.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{
		Index:      s.ESCafesIndex,
		DocumentID: strconv.FormatInt(c.ID, 10),
		Body:       strings.NewReader(string(b)),
		Refresh:    "false",
	}
	cctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(cctx, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("cafe_id", c.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("cafe_id", c.ID).Warn("es index response error")
	}
}

func (s *CafeService) removeCafeDoc(ctx context.Context, id int64) {
	if s.ES == nil || s.ESCafesIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESCafesIndex, DocumentID: strconv.FormatInt(id, 10)}
	cctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(cctx, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("cafe_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// SearchCafes performs a simple multi_match search on name, city, and
// description. Without a configured index it returns no hits.
func (s *CafeService) SearchCafes(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESCafesIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "city", "description"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	cctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(cctx),
		s.ES.Search.WithIndex(s.ESCafesIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
