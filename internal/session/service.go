// Package session orchestrates day-keyed missions: creation and idempotent
// retrieval, answer submission, word-state updates, user stats, and
// persistence of the in-memory caches through a key-value store.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/k-yamane/vocamind/internal/catalog"
	"github.com/k-yamane/vocamind/internal/learning"
	"github.com/k-yamane/vocamind/internal/mission"
	"github.com/k-yamane/vocamind/internal/storage"
)

const (
	keyMissions      = "vocamind:missions"
	keyWordStates    = "vocamind:word_states"
	keyStats         = "vocamind:stats"
	keySchemaVersion = "vocamind:schema_version"

	// schemaVersion guards the persisted cache shapes. A mismatch wipes all
	// three caches rather than risking reads of structurally incompatible
	// historical data.
	schemaVersion = 2
)

// CacheKeys lists every storage key the service persists under, schema
// version marker included. Backup and migration tooling iterates this list.
func CacheKeys() []string {
	return []string{keyMissions, keyWordStates, keyStats, keySchemaVersion}
}

// ProgressNotifier is the external progress/XP collaborator, invoked
// best-effort on mission completion. Failures are logged and never roll back
// the completion.
type ProgressNotifier interface {
	AddXP(amount int, sourceTag string) error
	UpdateStreak() error
}

// MissionRecord bundles a mission with its questions, as persisted.
type MissionRecord struct {
	Mission   mission.Mission    `json:"mission"`
	Questions []mission.Question `json:"questions"`
}

// Service is the mission session service. It is safe for concurrent use: all
// cache access happens under one mutex, since none of the invariants
// (idempotent same-day reuse, correct-count accumulation) hold under
// concurrent writers otherwise.
type Service struct {
	mu       sync.Mutex
	store    storage.Store
	catalog  *catalog.Catalog
	planner  *mission.Planner
	progress ProgressNotifier
	logger   *slog.Logger

	hydrated   bool
	missions   map[string]*MissionRecord
	wordStates map[string]learning.WordState
	stats      map[string]Stats
}

// ServiceOption customizes a Service.
type ServiceOption func(*Service)

// WithProgressNotifier wires the external progress collaborator.
func WithProgressNotifier(notifier ProgressNotifier) ServiceOption {
	return func(s *Service) {
		s.progress = notifier
	}
}

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a Service over the given store, catalog, and planner.
func NewService(store storage.Store, c *catalog.Catalog, planner *mission.Planner, opts ...ServiceOption) *Service {
	s := &Service{
		store:      store,
		catalog:    c,
		planner:    planner,
		logger:     slog.Default(),
		missions:   make(map[string]*MissionRecord),
		wordStates: make(map[string]learning.WordState),
		stats:      make(map[string]Stats),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func stateKey(userID, wordID string) string {
	return userID + "|" + wordID
}

// GetTodayMission returns the mission for (user, today), creating it on first
// call. Repeated calls within a day return the same mission with the same
// question order. A stored mission is regenerated only when its shape is
// stale (too few questions or no story question), which discards any answers
// already given to it.
func (s *Service) GetTodayMission(ctx context.Context, userID string, today time.Time) (MissionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx); err != nil {
		return MissionRecord{}, fmt.Errorf("hydrate() > %w", err)
	}

	missionID := mission.MissionID(userID, today)
	if record, ok := s.missions[missionID]; ok {
		if !mission.IsStale(record.Mission, record.Questions) {
			return *record, nil
		}
		s.logger.Info("regenerating stale mission", "mission_id", missionID)
	}

	weakWords, newWords := s.wordSources(userID, today)
	plan := s.planner.PlanDailyMission(userID, today, weakWords, newWords, s.catalog.Words())

	// Seed a fresh state for every referenced word the user has never seen.
	for _, question := range plan.Questions {
		for _, wordID := range question.WordIDs() {
			key := stateKey(userID, wordID)
			if _, ok := s.wordStates[key]; !ok {
				s.wordStates[key] = learning.NewWordState(userID, wordID, today)
			}
		}
	}

	record := &MissionRecord{Mission: plan.Mission, Questions: plan.Questions}
	s.missions[missionID] = record
	s.flush(ctx)

	return *record, nil
}

// wordSources computes the weak-word ranking and new-word candidates for a
// user. Weak words are ordered weakest-first; new candidates are words with
// no state yet or an unanswered one.
func (s *Service) wordSources(userID string, today time.Time) (weak, newWords []catalog.Word) {
	var weakStates []learning.WordState
	for _, state := range s.wordStates {
		if state.UserID != userID {
			continue
		}
		if learning.IsWeak(state, today) {
			weakStates = append(weakStates, state)
		}
	}

	for _, state := range learning.SortWeakStates(weakStates) {
		if word, ok := s.catalog.Lookup(state.WordID); ok {
			weak = append(weak, word)
		}
	}

	for _, word := range s.catalog.Words() {
		state, ok := s.wordStates[stateKey(userID, word.ID)]
		if !ok || state.Status == learning.StatusNew {
			newWords = append(newWords, word)
		}
	}
	return weak, newWords
}

// SubmitAnswerRequest identifies one answer to one mission question.
type SubmitAnswerRequest struct {
	MissionID   string
	QuestionID  string
	ChosenIndex int
	UserID      string
	AnsweredAt  time.Time
}

// SubmitAnswerResult reports the outcome of an answer submission.
type SubmitAnswerResult struct {
	WasCorrect bool
	Mission    mission.Mission
	Remaining  int
}

// SubmitAnswer grades one answer, updates the repetition state of every word
// the question references with the same outcome, and advances the mission
// state machine. Unknown mission or question ids are caller bugs and fail
// loudly.
func (s *Service) SubmitAnswer(ctx context.Context, req SubmitAnswerRequest) (SubmitAnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx); err != nil {
		return SubmitAnswerResult{}, fmt.Errorf("hydrate() > %w", err)
	}

	record, ok := s.missions[req.MissionID]
	if !ok {
		return SubmitAnswerResult{}, fmt.Errorf("unknown mission id %q", req.MissionID)
	}

	var question *mission.Question
	for i := range record.Questions {
		if record.Questions[i].ID == req.QuestionID {
			question = &record.Questions[i]
			break
		}
	}
	if question == nil {
		return SubmitAnswerResult{}, fmt.Errorf("unknown question id %q in mission %q", req.QuestionID, req.MissionID)
	}
	if question.Answered {
		return SubmitAnswerResult{}, fmt.Errorf("question %q already answered", req.QuestionID)
	}

	wasCorrect := req.ChosenIndex == question.CorrectIndex

	// Every word the question touches gets the same outcome: a story
	// question over three words updates all three states identically.
	for _, wordID := range question.WordIDs() {
		key := stateKey(req.UserID, wordID)
		state, ok := s.wordStates[key]
		if !ok {
			state = learning.NewWordState(req.UserID, wordID, req.AnsweredAt)
		}
		s.wordStates[key] = learning.UpdateAfterAnswer(state, wasCorrect, req.AnsweredAt)
	}

	question.Answered = true
	if wasCorrect {
		record.Mission.CorrectCount++
	}

	remaining := 0
	for _, q := range record.Questions {
		if !q.Answered {
			remaining++
		}
	}

	if remaining == 0 {
		completedAt := req.AnsweredAt
		record.Mission.Status = mission.StatusCompleted
		record.Mission.CompletedAt = &completedAt
		s.stats[req.UserID] = updateStatsAfterMission(s.stats[req.UserID], record.Mission)
		s.notifyProgress(record.Mission)
	} else if record.Mission.Status == mission.StatusNotStarted {
		record.Mission.Status = mission.StatusInProgress
	}

	s.flush(ctx)

	return SubmitAnswerResult{
		WasCorrect: wasCorrect,
		Mission:    record.Mission,
		Remaining:  remaining,
	}, nil
}

// notifyProgress invokes the external progress collaborator. Best-effort: a
// failing collaborator never rolls back mission completion.
func (s *Service) notifyProgress(m mission.Mission) {
	if s.progress == nil {
		return
	}
	if err := s.progress.AddXP(m.XPReward, "daily_mission"); err != nil {
		s.logger.Warn("progress.AddXP failed", "error", err)
	}
	if err := s.progress.UpdateStreak(); err != nil {
		s.logger.Warn("progress.UpdateStreak failed", "error", err)
	}
}

// StatsForUser returns the user's aggregate stats.
func (s *Service) StatsForUser(ctx context.Context, userID string) (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx); err != nil {
		return Stats{}, fmt.Errorf("hydrate() > %w", err)
	}

	stats, ok := s.stats[userID]
	if !ok {
		return Stats{UserID: userID}, nil
	}
	return stats, nil
}

// MissionsForUser returns all stored missions for a user, most recent date
// last. Used by the statistics reporting layer.
func (s *Service) MissionsForUser(ctx context.Context, userID string) ([]MissionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx); err != nil {
		return nil, fmt.Errorf("hydrate() > %w", err)
	}

	var records []MissionRecord
	for _, record := range s.missions {
		if record.Mission.UserID == userID {
			records = append(records, *record)
		}
	}
	sortMissionRecords(records)
	return records, nil
}

// WordStatesForUser returns the user's word states keyed by word id.
func (s *Service) WordStatesForUser(ctx context.Context, userID string) (map[string]learning.WordState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx); err != nil {
		return nil, fmt.Errorf("hydrate() > %w", err)
	}

	states := make(map[string]learning.WordState)
	for _, state := range s.wordStates {
		if state.UserID == userID {
			states[state.WordID] = state
		}
	}
	return states, nil
}

func sortMissionRecords(records []MissionRecord) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Mission.Date < records[j].Mission.Date
	})
}

// hydrate loads the persisted caches once per process. A schema version
// mismatch wipes every cache and starts fresh.
func (s *Service) hydrate(ctx context.Context) error {
	if s.hydrated {
		return nil
	}

	stored, err := s.store.Load(ctx, keySchemaVersion)
	if err != nil {
		return fmt.Errorf("store.Load(%s) > %w", keySchemaVersion, err)
	}

	storedVersion := -1
	if stored != nil {
		if err := json.Unmarshal(stored, &storedVersion); err != nil {
			s.logger.Warn("unreadable schema version marker, resetting caches", "error", err)
			storedVersion = -1
		}
	}

	if storedVersion != schemaVersion {
		if stored != nil {
			s.logger.Info("schema version mismatch, wiping persisted caches",
				"stored", storedVersion, "expected", schemaVersion)
		}
		s.hydrated = true
		s.flush(ctx)
		return nil
	}

	if err := loadCache(ctx, s.store, keyMissions, &s.missions); err != nil {
		return err
	}
	if err := loadCache(ctx, s.store, keyWordStates, &s.wordStates); err != nil {
		return err
	}
	if err := loadCache(ctx, s.store, keyStats, &s.stats); err != nil {
		return err
	}

	s.hydrated = true
	return nil
}

func loadCache[T any](ctx context.Context, store storage.Store, key string, target *T) error {
	payload, err := store.Load(ctx, key)
	if err != nil {
		return fmt.Errorf("store.Load(%s) > %w", key, err)
	}
	if payload == nil {
		return nil
	}
	if err := json.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("json.Unmarshal(%s) > %w", key, err)
	}
	return nil
}

// flush writes every cache back to the store. Best-effort: the in-memory
// state stays authoritative and the next successful flush reconciles durable
// storage, so persistence failures are logged, not returned.
func (s *Service) flush(ctx context.Context) {
	saveCache(ctx, s.store, s.logger, keySchemaVersion, schemaVersion)
	saveCache(ctx, s.store, s.logger, keyMissions, s.missions)
	saveCache(ctx, s.store, s.logger, keyWordStates, s.wordStates)
	saveCache(ctx, s.store, s.logger, keyStats, s.stats)
}

func saveCache[T any](ctx context.Context, store storage.Store, logger *slog.Logger, key string, value T) {
	payload, err := json.Marshal(value)
	if err != nil {
		logger.Warn("failed to marshal cache", "key", key, "error", err)
		return
	}
	if err := store.Save(ctx, key, payload); err != nil {
		logger.Warn("failed to persist cache", "key", key, "error", err)
	}
}
