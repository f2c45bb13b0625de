package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
	"github.com/lexibase/lexibase-backend/internal/provider"
	"github.com/lexibase/lexibase-backend/internal/service/ingest"
	"github.com/lexibase/lexibase-backend/internal/service/media"
	"github.com/lexibase/lexibase-backend/internal/service/user"
)

func newAdminHandler(users userAdminService, ing ingestService, med mediaService, purge purgeService) *AdminHandler {
	if users == nil {
		users = &userAdminServiceMock{}
	}
	if ing == nil {
		ing = &ingestServiceMock{}
	}
	if med == nil {
		med = &mediaServiceMock{}
	}
	if purge == nil {
		purge = &purgeServiceMock{}
	}
	return NewAdminHandler(users, ing, med, purge, testLogger())
}

func TestAdminHandler_ListUsers_Forbidden(t *testing.T) {
	t.Parallel()

	h := newAdminHandler(&userAdminServiceMock{
		ListUsersFunc: func(_ context.Context, _ user.Actor, _, _ int) ([]domain.User, int, error) {
			t.Fatal("service should not be called")
			return nil, 0, nil
		},
	}, nil, nil, nil)

	rec := httptest.NewRecorder()
	h.ListUsers(rec, authedRequest(http.MethodGet, "/v1/admin/users", "", uuid.New(), domain.UserRoleUser))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status: got=%d, want=403", rec.Code)
	}
}

func TestAdminHandler_ListUsers(t *testing.T) {
	t.Parallel()

	adminID := uuid.New()
	h := newAdminHandler(&userAdminServiceMock{
		ListUsersFunc: func(_ context.Context, actor user.Actor, limit, offset int) ([]domain.User, int, error) {
			if actor.ID != adminID || actor.Role != domain.UserRoleAdmin {
				t.Errorf("actor: got=%+v", actor)
			}
			if limit != 50 || offset != 10 {
				t.Errorf("paging: got=%d/%d", limit, offset)
			}
			return []domain.User{*testUser(uuid.New(), domain.UserRoleUser)}, 1, nil
		},
	}, nil, nil, nil)

	rec := httptest.NewRecorder()
	h.ListUsers(rec, authedRequest(http.MethodGet, "/v1/admin/users?limit=50&offset=10", "", adminID, domain.UserRoleAdmin))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got=%d, want=200", rec.Code)
	}
}

func TestAdminHandler_ChangeRole_SelfConflict(t *testing.T) {
	t.Parallel()

	adminID := uuid.New()
	h := newAdminHandler(&userAdminServiceMock{
		ChangeRoleFunc: func(_ context.Context, _ user.Actor, _ uuid.UUID, _ domain.UserRole) (*domain.User, error) {
			return nil, domain.ErrConflict
		},
	}, nil, nil, nil)

	req := authedRequest(http.MethodPatch, "/v1/admin/users/"+adminID.String()+"/role", `{"role":"user"}`, adminID, domain.UserRoleAdmin)
	req.SetPathValue("id", adminID.String())
	rec := httptest.NewRecorder()
	h.ChangeRole(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status: got=%d, want=409", rec.Code)
	}
}

func TestAdminHandler_ImportWords(t *testing.T) {
	t.Parallel()

	h := newAdminHandler(nil, &ingestServiceMock{
		IngestBatchFunc: func(_ context.Context, texts []string, languageCode string) (*ingest.BatchReport, error) {
			if len(texts) != 3 || languageCode != "da" {
				t.Errorf("args: got=%v/%s", texts, languageCode)
			}
			return &ingest.BatchReport{Ingested: 2, Missing: []string{"asdfgh"}}, nil
		},
	}, nil, nil)

	body := `{"words":["hund","kat","asdfgh"],"languageCode":"da"}`
	rec := httptest.NewRecorder()
	h.ImportWords(rec, authedRequest(http.MethodPost, "/v1/admin/words/import", body, uuid.New(), domain.UserRoleAdmin))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got=%d, want=200", rec.Code)
	}

	var resp importResponse
	decodeBody(t, rec, &resp)
	if resp.Ingested != 2 || len(resp.Missing) != 1 {
		t.Errorf("report: got=%+v", resp)
	}
}

func TestAdminHandler_ImportWords_EmptyBatch(t *testing.T) {
	t.Parallel()

	h := newAdminHandler(nil, &ingestServiceMock{}, nil, nil)

	rec := httptest.NewRecorder()
	h.ImportWords(rec, authedRequest(http.MethodPost, "/v1/admin/words/import", `{"words":[],"languageCode":"da"}`, uuid.New(), domain.UserRoleAdmin))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got=%d, want=400", rec.Code)
	}
}

func TestAdminHandler_FindImage(t *testing.T) {
	t.Parallel()

	wordID := uuid.New()
	h := newAdminHandler(nil, nil, &mediaServiceMock{
		FindImageFunc: func(_ context.Context, id uuid.UUID) (*domain.Word, error) {
			if id != wordID {
				t.Errorf("id: got=%s, want=%s", id, wordID)
			}
			w := testWord(wordID)
			url := "https://images.pexels.com/photos/1/dog.jpeg"
			w.ImageURL = &url
			return w, nil
		},
	}, nil)

	req := authedRequest(http.MethodPost, "/v1/admin/words/"+wordID.String()+"/image", "", uuid.New(), domain.UserRoleAdmin)
	req.SetPathValue("id", wordID.String())
	rec := httptest.NewRecorder()
	h.FindImage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got=%d, want=200", rec.Code)
	}

	var resp wordResponse
	decodeBody(t, rec, &resp)
	if resp.ImageURL == nil {
		t.Error("expected image url in response")
	}
}

func TestAdminHandler_Translate(t *testing.T) {
	t.Parallel()

	h := newAdminHandler(nil, nil, &mediaServiceMock{
		TranslateFunc: func(_ context.Context, text, from, to string) (*provider.TranslationResult, error) {
			if text != "hund" || from != "da" || to != "en" {
				t.Errorf("args: got=%s/%s/%s", text, from, to)
			}
			return &provider.TranslationResult{Text: "dog", Match: 0.98}, nil
		},
	}, nil)

	body := `{"text":"hund","from":"da","to":"en"}`
	rec := httptest.NewRecorder()
	h.Translate(rec, authedRequest(http.MethodPost, "/v1/admin/translate", body, uuid.New(), domain.UserRoleAdmin))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got=%d, want=200", rec.Code)
	}

	var resp translateResponse
	decodeBody(t, rec, &resp)
	if resp.Text != "dog" || resp.Match != 0.98 {
		t.Errorf("body: got=%+v", resp)
	}
}

func TestAdminHandler_EnrichMissing(t *testing.T) {
	t.Parallel()

	h := newAdminHandler(nil, nil, &mediaServiceMock{
		EnrichMissingFunc: func(_ context.Context, languageCode string) (*media.Report, error) {
			if languageCode != "da" {
				t.Errorf("language: got=%q", languageCode)
			}
			return &media.Report{Processed: 7, ImagesAdded: 5, AudioAdded: 6, Failed: 1}, nil
		},
	}, nil)

	rec := httptest.NewRecorder()
	h.EnrichMissing(rec, authedRequest(http.MethodPost, "/v1/admin/words/enrich?language=da", "", uuid.New(), domain.UserRoleAdmin))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got=%d, want=200", rec.Code)
	}

	var resp enrichResponse
	decodeBody(t, rec, &resp)
	if resp.Processed != 7 || resp.Failed != 1 {
		t.Errorf("report: got=%+v", resp)
	}
}

func TestAdminHandler_PurgeDeleted(t *testing.T) {
	t.Parallel()

	h := newAdminHandler(nil, nil, nil, &purgeServiceMock{
		PurgeDeletedFunc: func(_ context.Context) (int64, error) {
			return 9, nil
		},
	})

	rec := httptest.NewRecorder()
	h.PurgeDeleted(rec, authedRequest(http.MethodPost, "/v1/admin/words/purge", "", uuid.New(), domain.UserRoleAdmin))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got=%d, want=200", rec.Code)
	}

	var resp map[string]int64
	decodeBody(t, rec, &resp)
	if resp["purged"] != 9 {
		t.Errorf("purged: got=%d, want=9", resp["purged"])
	}
}
