package ops

import (
	"context"
	"io"
	"log"
	"strings"
	"time"

	"github.com/hpungsan/pcbuild/internal/build"
	"github.com/hpungsan/pcbuild/internal/catalog"
	"github.com/hpungsan/pcbuild/internal/compat"
	"github.com/hpungsan/pcbuild/internal/errors"
	"github.com/hpungsan/pcbuild/internal/recommend"
	"github.com/hpungsan/pcbuild/internal/share"
	"github.com/hpungsan/pcbuild/internal/store"
)

// User-facing messages.
const (
	MsgSaved                = "Configuración guardada exitosamente"
	MsgSaveFailed           = "Error al guardar la configuración"
	MsgLoaded               = "Configuración anterior cargada"
	MsgShareFailed          = "Error al copiar la configuración"
	MsgEmptyBuild           = "Selecciona componentes para ver tu configuración"
	MsgEmptyCheck           = "Selecciona componentes para verificar compatibilidad"
	MsgEmptyRecommendations = "Las recomendaciones aparecerán aquí basadas en tu selección"
	MsgNoRecommendations    = "No hay recomendaciones adicionales para tu configuración actual."
	MsgAllCompatible        = "✅ Todos los componentes son compatibles"
)

// Level classifies a Notice.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notice is a transient message for the user.
type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Sharer delivers share text; *share.Chain implements it.
type Sharer interface {
	Share(ctx context.Context, text string) (share.Result, error)
}

// Options configures a Session. Catalog and Rules default to the embedded
// catalog; a nil Store makes Save fail with an error notice and Load report
// absence.
type Options struct {
	Catalog *catalog.Catalog
	Rules   *catalog.RuleSet
	Store   store.Store
	Sharer  Sharer
	Logger  *log.Logger
	Now     func() time.Time
}

// Session owns one build and routes user events to the core. It is not
// safe for concurrent use; adapters serialize access.
type Session struct {
	catalog *catalog.Catalog
	rules   *catalog.RuleSet
	store   store.Store
	sharer  Sharer
	logger  *log.Logger
	now     func() time.Time

	state *build.State
	view  View
}

// NewSession starts a session with an empty build on the first category tab.
func NewSession(opts Options) *Session {
	s := &Session{
		catalog: opts.Catalog,
		rules:   opts.Rules,
		store:   opts.Store,
		sharer:  opts.Sharer,
		logger:  opts.Logger,
		now:     opts.Now,
		state:   build.New(),
		view:    View(catalog.CPU),
	}
	if s.catalog == nil || s.rules == nil {
		s.catalog, s.rules = catalog.MustDefault()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard, "", 0)
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Catalog returns the session's catalog.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// State returns a copy of the current build.
func (s *Session) State() *build.State {
	return s.state.Clone()
}

// SelectOutput is returned by Select and SelectCustom.
type SelectOutput struct {
	Selection build.Selection `json:"selection"`
	Summary   SummaryOutput   `json:"summary"`
	Notice    Notice          `json:"notice"`
}

// Select picks a catalog component, replacing any previous choice in the
// same category. The price comes from the catalog.
func (s *Session) Select(category, name string) (*SelectOutput, error) {
	c, ok := catalog.ParseCategory(category)
	if !ok {
		return nil, errors.NewUnknownCategory(category)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewInvalidRequest("name is required")
	}
	comp, ok := s.catalog.Find(c, name)
	if !ok {
		return nil, errors.NewUnknownComponent(string(c), name)
	}
	return s.apply(c, comp.Name, comp.Price), nil
}

// SelectCustom selects a component that need not be in the catalog.
func (s *Session) SelectCustom(category, name string, price int) (*SelectOutput, error) {
	c, ok := catalog.ParseCategory(category)
	if !ok {
		return nil, errors.NewUnknownCategory(category)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewInvalidRequest("name is required")
	}
	if price < 0 {
		return nil, errors.NewInvalidRequest("price must be >= 0")
	}
	return s.apply(c, name, price), nil
}

func (s *Session) apply(c catalog.Category, name string, price int) *SelectOutput {
	s.state.Select(c, name, price)
	s.logger.Printf("session: event=select category=%s name=%q price=%d", c, name, price)
	sel, _ := s.state.Get(c)
	return &SelectOutput{
		Selection: sel,
		Summary:   s.Summary(),
		Notice:    Notice{Level: LevelSuccess, Message: name + " seleccionado"},
	}
}

// CheckOutput combines the compatibility report and recommendations.
// For an empty build Empty is set and Report is nil.
type CheckOutput struct {
	Empty           bool           `json:"empty"`
	Report          *compat.Report `json:"report,omitempty"`
	Recommendations []string       `json:"recommendations"`
	StatusMessage   string         `json:"status_message,omitempty"`
	AdviceMessage   string         `json:"advice_message,omitempty"`
}

// Check evaluates compatibility and recommendations on a copy of the build.
func (s *Session) Check() CheckOutput {
	if s.state.IsEmpty() {
		return CheckOutput{
			Empty:           true,
			Recommendations: []string{},
			StatusMessage:   MsgEmptyCheck,
			AdviceMessage:   MsgEmptyRecommendations,
		}
	}

	snapshot := s.state.Clone()
	report := compat.Evaluate(snapshot, s.rules)
	recs := recommend.Recommend(snapshot)

	out := CheckOutput{
		Report:          &report,
		Recommendations: recs,
	}
	if report.Compatible {
		out.StatusMessage = MsgAllCompatible
	}
	if len(recs) == 0 {
		out.AdviceMessage = MsgNoRecommendations
	}
	return out
}

// Save persists the build. Failures never escape as errors: they are
// logged and reported as an error notice, leaving the build untouched.
func (s *Session) Save(ctx context.Context) Notice {
	if s.state.IsEmpty() {
		return Notice{Level: LevelInfo, Message: MsgEmptyBuild}
	}
	if s.store == nil {
		s.logger.Printf("session: event=save error=%q", "no store configured")
		return Notice{Level: LevelError, Message: MsgSaveFailed}
	}

	snap := build.NewSnapshot(s.state, "", s.now())
	id, err := s.store.Save(ctx, snap)
	if err != nil {
		s.logger.Printf("session: event=save error=%q", err.Error())
		return Notice{Level: LevelError, Message: MsgSaveFailed}
	}
	s.logger.Printf("session: event=save id=%s total=%d", id, snap.TotalPrice)
	return Notice{Level: LevelSuccess, Message: MsgSaved}
}

// LoadOutput is returned by a successful Load.
type LoadOutput struct {
	Snapshot *build.Snapshot `json:"snapshot"`
	Summary  SummaryOutput   `json:"summary"`
	Notice   Notice          `json:"notice"`
}

// Load restores the saved build. ok is false when nothing usable is
// stored; the current build is then left as is.
func (s *Session) Load(ctx context.Context) (out *LoadOutput, ok bool) {
	if s.store == nil {
		return nil, false
	}
	snap, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Printf("session: event=load error=%q", err.Error())
		return nil, false
	}
	if snap == nil {
		return nil, false
	}
	restored, err := build.Restore(*snap)
	if err != nil {
		s.logger.Printf("session: event=load id=%s error=%q", snap.ID, err.Error())
		return nil, false
	}
	s.state = restored
	s.logger.Printf("session: event=load id=%s total=%d", snap.ID, snap.TotalPrice)
	return &LoadOutput{
		Snapshot: snap,
		Summary:  s.Summary(),
		Notice:   Notice{Level: LevelInfo, Message: MsgLoaded},
	}, true
}

// ShareOutput is returned by Share. Tier is empty when nothing was shared.
type ShareOutput struct {
	Text   string `json:"text,omitempty"`
	Tier   string `json:"tier,omitempty"`
	Notice Notice `json:"notice"`
}

// Share hands the share text to the share chain.
func (s *Session) Share(ctx context.Context) ShareOutput {
	if s.state.IsEmpty() {
		return ShareOutput{Notice: Notice{Level: LevelInfo, Message: MsgEmptyBuild}}
	}
	text := build.ShareText(s.state)
	if s.sharer == nil {
		return ShareOutput{Text: text, Notice: Notice{Level: LevelError, Message: MsgShareFailed}}
	}
	res, err := s.sharer.Share(ctx, text)
	if err != nil {
		s.logger.Printf("session: event=share error=%q", err.Error())
		return ShareOutput{Text: text, Notice: Notice{Level: LevelError, Message: MsgShareFailed}}
	}
	s.logger.Printf("session: event=share tier=%s", res.Tier)
	return ShareOutput{
		Text:   text,
		Tier:   res.Tier,
		Notice: Notice{Level: LevelSuccess, Message: res.Notice},
	}
}

// Reset discards the build and returns to the first tab.
func (s *Session) Reset() {
	s.state = build.New()
	s.view = View(catalog.CPU)
	s.logger.Printf("session: event=reset")
}
