package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
	"github.com/lexibase/lexibase-backend/internal/provider"
	"github.com/lexibase/lexibase-backend/internal/service/auth"
	"github.com/lexibase/lexibase-backend/internal/service/dictionary"
	"github.com/lexibase/lexibase-backend/internal/service/ingest"
	"github.com/lexibase/lexibase-backend/internal/service/list"
	"github.com/lexibase/lexibase-backend/internal/service/media"
	"github.com/lexibase/lexibase-backend/internal/service/practice"
	"github.com/lexibase/lexibase-backend/internal/service/user"
)

type authServiceMock struct {
	RegisterFunc  func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	LoginFunc     func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	RefreshFunc   func(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	LogoutFunc    func(ctx context.Context, refreshToken string) error
	LogoutAllFunc func(ctx context.Context, userID uuid.UUID) error
}

var _ authService = (*authServiceMock)(nil)

func (m *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	return m.RegisterFunc(ctx, input)
}

func (m *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	return m.LoginFunc(ctx, input)
}

func (m *authServiceMock) Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error) {
	return m.RefreshFunc(ctx, input)
}

func (m *authServiceMock) Logout(ctx context.Context, refreshToken string) error {
	return m.LogoutFunc(ctx, refreshToken)
}

func (m *authServiceMock) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	return m.LogoutAllFunc(ctx, userID)
}

type dictionaryServiceMock struct {
	GetWordFunc     func(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	LookupTextFunc  func(ctx context.Context, text, languageCode string) (*domain.Word, error)
	SearchFunc      func(ctx context.Context, filter domain.WordFilter) ([]domain.Word, int, error)
	CreateWordFunc  func(ctx context.Context, input dictionary.CreateWordInput) (*domain.Word, error)
	UpdateWordFunc  func(ctx context.Context, id uuid.UUID, input dictionary.UpdateWordInput) (*domain.Word, error)
	DeleteWordFunc  func(ctx context.Context, id uuid.UUID) error
	RestoreWordFunc func(ctx context.Context, id uuid.UUID) (*domain.Word, error)
}

var _ dictionaryService = (*dictionaryServiceMock)(nil)

func (m *dictionaryServiceMock) GetWord(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	return m.GetWordFunc(ctx, id)
}

func (m *dictionaryServiceMock) LookupText(ctx context.Context, text, languageCode string) (*domain.Word, error) {
	return m.LookupTextFunc(ctx, text, languageCode)
}

func (m *dictionaryServiceMock) Search(ctx context.Context, filter domain.WordFilter) ([]domain.Word, int, error) {
	return m.SearchFunc(ctx, filter)
}

func (m *dictionaryServiceMock) CreateWord(ctx context.Context, input dictionary.CreateWordInput) (*domain.Word, error) {
	return m.CreateWordFunc(ctx, input)
}

func (m *dictionaryServiceMock) UpdateWord(ctx context.Context, id uuid.UUID, input dictionary.UpdateWordInput) (*domain.Word, error) {
	return m.UpdateWordFunc(ctx, id, input)
}

func (m *dictionaryServiceMock) DeleteWord(ctx context.Context, id uuid.UUID) error {
	return m.DeleteWordFunc(ctx, id)
}

func (m *dictionaryServiceMock) RestoreWord(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	return m.RestoreWordFunc(ctx, id)
}

type userDictServiceMock struct {
	AddWordFunc     func(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error)
	GetWordFunc     func(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error)
	ListWordsFunc   func(ctx context.Context, userID uuid.UUID, filter domain.UserWordFilter) ([]domain.UserWord, int, error)
	CustomizeFunc   func(ctx context.Context, userID, wordID uuid.UUID, definition *string, difficulty *domain.DifficultyLevel) (*domain.UserWord, error)
	RemoveWordFunc  func(ctx context.Context, userID, wordID uuid.UUID) error
	RestoreWordFunc func(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error)
}

var _ userDictService = (*userDictServiceMock)(nil)

func (m *userDictServiceMock) AddWord(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error) {
	return m.AddWordFunc(ctx, userID, wordID)
}

func (m *userDictServiceMock) GetWord(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error) {
	return m.GetWordFunc(ctx, userID, wordID)
}

func (m *userDictServiceMock) ListWords(ctx context.Context, userID uuid.UUID, filter domain.UserWordFilter) ([]domain.UserWord, int, error) {
	return m.ListWordsFunc(ctx, userID, filter)
}

func (m *userDictServiceMock) Customize(ctx context.Context, userID, wordID uuid.UUID, definition *string, difficulty *domain.DifficultyLevel) (*domain.UserWord, error) {
	return m.CustomizeFunc(ctx, userID, wordID, definition, difficulty)
}

func (m *userDictServiceMock) RemoveWord(ctx context.Context, userID, wordID uuid.UUID) error {
	return m.RemoveWordFunc(ctx, userID, wordID)
}

func (m *userDictServiceMock) RestoreWord(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error) {
	return m.RestoreWordFunc(ctx, userID, wordID)
}

type listServiceMock struct {
	BrowseFunc             func(ctx context.Context, filter domain.ListFilter) ([]domain.List, int, error)
	GetListFunc            func(ctx context.Context, actor list.Actor, id uuid.UUID) (*domain.List, error)
	CreateListFunc         func(ctx context.Context, actor list.Actor, input list.CreateListInput) (*domain.List, error)
	UpdateListFunc         func(ctx context.Context, actor list.Actor, id uuid.UUID, input list.UpdateListInput) (*domain.List, error)
	DeleteListFunc         func(ctx context.Context, actor list.Actor, id uuid.UUID) error
	AddWordToListFunc      func(ctx context.Context, actor list.Actor, listID, wordID uuid.UUID) error
	RemoveWordFromListFunc func(ctx context.Context, actor list.Actor, listID, wordID uuid.UUID) error
	AddToUserFunc          func(ctx context.Context, userID, listID uuid.UUID) (*domain.UserList, error)
	MyListsFunc            func(ctx context.Context, userID uuid.UUID) ([]domain.UserList, error)
	RenameUserListFunc     func(ctx context.Context, userID, listID uuid.UUID, name, description *string) (*domain.UserList, error)
	RemoveFromUserFunc     func(ctx context.Context, userID, listID uuid.UUID) error
	RefreshProgressFunc    func(ctx context.Context, userID, listID uuid.UUID) (int, error)
}

var _ listService = (*listServiceMock)(nil)

func (m *listServiceMock) Browse(ctx context.Context, filter domain.ListFilter) ([]domain.List, int, error) {
	return m.BrowseFunc(ctx, filter)
}

func (m *listServiceMock) GetList(ctx context.Context, actor list.Actor, id uuid.UUID) (*domain.List, error) {
	return m.GetListFunc(ctx, actor, id)
}

func (m *listServiceMock) CreateList(ctx context.Context, actor list.Actor, input list.CreateListInput) (*domain.List, error) {
	return m.CreateListFunc(ctx, actor, input)
}

func (m *listServiceMock) UpdateList(ctx context.Context, actor list.Actor, id uuid.UUID, input list.UpdateListInput) (*domain.List, error) {
	return m.UpdateListFunc(ctx, actor, id, input)
}

func (m *listServiceMock) DeleteList(ctx context.Context, actor list.Actor, id uuid.UUID) error {
	return m.DeleteListFunc(ctx, actor, id)
}

func (m *listServiceMock) AddWordToList(ctx context.Context, actor list.Actor, listID, wordID uuid.UUID) error {
	return m.AddWordToListFunc(ctx, actor, listID, wordID)
}

func (m *listServiceMock) RemoveWordFromList(ctx context.Context, actor list.Actor, listID, wordID uuid.UUID) error {
	return m.RemoveWordFromListFunc(ctx, actor, listID, wordID)
}

func (m *listServiceMock) AddToUser(ctx context.Context, userID, listID uuid.UUID) (*domain.UserList, error) {
	return m.AddToUserFunc(ctx, userID, listID)
}

func (m *listServiceMock) MyLists(ctx context.Context, userID uuid.UUID) ([]domain.UserList, error) {
	return m.MyListsFunc(ctx, userID)
}

func (m *listServiceMock) RenameUserList(ctx context.Context, userID, listID uuid.UUID, name, description *string) (*domain.UserList, error) {
	return m.RenameUserListFunc(ctx, userID, listID, name, description)
}

func (m *listServiceMock) RemoveFromUser(ctx context.Context, userID, listID uuid.UUID) error {
	return m.RemoveFromUserFunc(ctx, userID, listID)
}

func (m *listServiceMock) RefreshProgress(ctx context.Context, userID, listID uuid.UUID) (int, error) {
	return m.RefreshProgressFunc(ctx, userID, listID)
}

type practiceServiceMock struct {
	StartSessionFunc func(ctx context.Context, userID uuid.UUID) (*practice.Session, error)
	SubmitAnswerFunc func(ctx context.Context, userID, wordID uuid.UUID, correct bool) (*domain.UserWord, error)
	DashboardFunc    func(ctx context.Context, userID uuid.UUID) (*domain.Dashboard, error)
}

var _ practiceService = (*practiceServiceMock)(nil)

func (m *practiceServiceMock) StartSession(ctx context.Context, userID uuid.UUID) (*practice.Session, error) {
	return m.StartSessionFunc(ctx, userID)
}

func (m *practiceServiceMock) SubmitAnswer(ctx context.Context, userID, wordID uuid.UUID, correct bool) (*domain.UserWord, error) {
	return m.SubmitAnswerFunc(ctx, userID, wordID, correct)
}

func (m *practiceServiceMock) Dashboard(ctx context.Context, userID uuid.UUID) (*domain.Dashboard, error) {
	return m.DashboardFunc(ctx, userID)
}

type profileServiceMock struct {
	GetProfileFunc     func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	UpdateProfileFunc  func(ctx context.Context, userID uuid.UUID, in user.UpdateProfileInput) (*domain.User, error)
	GetSettingsFunc    func(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	UpdateSettingsFunc func(ctx context.Context, userID uuid.UUID, in user.UpdateSettingsInput) (*domain.UserSettings, error)
}

var _ profileService = (*profileServiceMock)(nil)

func (m *profileServiceMock) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return m.GetProfileFunc(ctx, userID)
}

func (m *profileServiceMock) UpdateProfile(ctx context.Context, userID uuid.UUID, in user.UpdateProfileInput) (*domain.User, error) {
	return m.UpdateProfileFunc(ctx, userID, in)
}

func (m *profileServiceMock) GetSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	return m.GetSettingsFunc(ctx, userID)
}

func (m *profileServiceMock) UpdateSettings(ctx context.Context, userID uuid.UUID, in user.UpdateSettingsInput) (*domain.UserSettings, error) {
	return m.UpdateSettingsFunc(ctx, userID, in)
}

type userAdminServiceMock struct {
	ListUsersFunc  func(ctx context.Context, actor user.Actor, limit, offset int) ([]domain.User, int, error)
	ChangeRoleFunc func(ctx context.Context, actor user.Actor, userID uuid.UUID, role domain.UserRole) (*domain.User, error)
	DeactivateFunc func(ctx context.Context, actor user.Actor, userID uuid.UUID) error
}

var _ userAdminService = (*userAdminServiceMock)(nil)

func (m *userAdminServiceMock) ListUsers(ctx context.Context, actor user.Actor, limit, offset int) ([]domain.User, int, error) {
	return m.ListUsersFunc(ctx, actor, limit, offset)
}

func (m *userAdminServiceMock) ChangeRole(ctx context.Context, actor user.Actor, userID uuid.UUID, role domain.UserRole) (*domain.User, error) {
	return m.ChangeRoleFunc(ctx, actor, userID, role)
}

func (m *userAdminServiceMock) Deactivate(ctx context.Context, actor user.Actor, userID uuid.UUID) error {
	return m.DeactivateFunc(ctx, actor, userID)
}

type ingestServiceMock struct {
	IngestWordFunc  func(ctx context.Context, text, languageCode string) (*domain.Word, error)
	IngestBatchFunc func(ctx context.Context, texts []string, languageCode string) (*ingest.BatchReport, error)
}

var _ ingestService = (*ingestServiceMock)(nil)

func (m *ingestServiceMock) IngestWord(ctx context.Context, text, languageCode string) (*domain.Word, error) {
	return m.IngestWordFunc(ctx, text, languageCode)
}

func (m *ingestServiceMock) IngestBatch(ctx context.Context, texts []string, languageCode string) (*ingest.BatchReport, error) {
	return m.IngestBatchFunc(ctx, texts, languageCode)
}

type mediaServiceMock struct {
	FindImageFunc     func(ctx context.Context, wordID uuid.UUID) (*domain.Word, error)
	GenerateAudioFunc func(ctx context.Context, wordID uuid.UUID) (*domain.Word, error)
	TranslateFunc     func(ctx context.Context, text, from, to string) (*provider.TranslationResult, error)
	EnrichMissingFunc func(ctx context.Context, languageCode string) (*media.Report, error)
}

var _ mediaService = (*mediaServiceMock)(nil)

func (m *mediaServiceMock) FindImage(ctx context.Context, wordID uuid.UUID) (*domain.Word, error) {
	return m.FindImageFunc(ctx, wordID)
}

func (m *mediaServiceMock) GenerateAudio(ctx context.Context, wordID uuid.UUID) (*domain.Word, error) {
	return m.GenerateAudioFunc(ctx, wordID)
}

func (m *mediaServiceMock) Translate(ctx context.Context, text, from, to string) (*provider.TranslationResult, error) {
	return m.TranslateFunc(ctx, text, from, to)
}

func (m *mediaServiceMock) EnrichMissing(ctx context.Context, languageCode string) (*media.Report, error) {
	return m.EnrichMissingFunc(ctx, languageCode)
}

type purgeServiceMock struct {
	PurgeDeletedFunc func(ctx context.Context) (int64, error)
}

var _ purgeService = (*purgeServiceMock)(nil)

func (m *purgeServiceMock) PurgeDeleted(ctx context.Context) (int64, error) {
	return m.PurgeDeletedFunc(ctx)
}
