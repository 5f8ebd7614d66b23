// Package dialog implements the turn coordinator of the FAQ assistant:
// scope filtering, intent disambiguation, name acquisition, and session
// state transitions around the response generator.
package dialog

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/unanda-ft/faqbot/internal/config"
	apperrors "github.com/unanda-ft/faqbot/internal/errors"
	"github.com/unanda-ft/faqbot/internal/knowledge"
	"github.com/unanda-ft/faqbot/internal/logger"
	"github.com/unanda-ft/faqbot/internal/metrics"
	"github.com/unanda-ft/faqbot/internal/nlu"
	"github.com/unanda-ft/faqbot/internal/response"
	"github.com/unanda-ft/faqbot/internal/sentry"
	"github.com/unanda-ft/faqbot/internal/session"
)

// Classifier is the NLU dependency of the manager.
type Classifier interface {
	Classify(ctx context.Context, text string) (*nlu.Result, error)
}

// Turn is the outcome of one handled user message.
type Turn struct {
	Reply    string
	Category string
}

// User-facing replies for failures outside any handler's control. The
// transport layer surfaces these through the error chain.
const (
	technicalDifficultyReply = "Maaf, terjadi kendala teknis di sistem saya. Silakan coba beberapa saat lagi."
	forgetNameFailedReply    = "Maaf, terjadi sedikit masalah saat mencoba melupakan nama Anda."
)

// islamicGreetingExpr matches a standalone Islamic greeting, optionally
// with the "wr. wb." suffix and trailing punctuation.
var islamicGreetingExpr = regexp.MustCompile(`^\s*assalamu'?alaikum(\s*wr\.?\s*wb\.?)?\s*[.!?]?\s*$`)

// picker indirection keeps the manager's small-talk variants testable.
type picker func(n int) int

// Manager coordinates one conversation turn end to end.
type Manager struct {
	cfg        config.DialogConfig
	store      session.Store
	classifier Classifier
	gen        *response.Generator
	scope      *ScopeFilter
	ambiguity  *AmbiguityResolver
	logger     *logger.Logger
	metrics    *metrics.Metrics
	wrap       *apperrors.ErrorWrapper
	pick       picker
}

// NewManager wires the dialogue manager from its parts.
func NewManager(
	cfg config.DialogConfig,
	kb *knowledge.Base,
	store session.Store,
	classifier Classifier,
	gen *response.Generator,
	log *logger.Logger,
	m *metrics.Metrics,
) *Manager {
	return &Manager{
		cfg:        cfg,
		store:      store,
		classifier: classifier,
		gen:        gen,
		scope:      NewScopeFilter(cfg.DomainKeywords, cfg.OOSKeywords, cfg.MinWordsForNoDomain),
		ambiguity:  NewAmbiguityResolver(cfg.ConfidenceThreshold, cfg.DisambiguationMargin, cfg.MaxClarifyOptions, kb.IntentDescriptions),
		logger:     log.WithModule("dialog"),
		metrics:    m,
		wrap:       apperrors.NewWrapper("dialog"),
		pick:       defaultPick,
	}
}

func defaultPick(n int) int {
	if n <= 1 {
		return 0
	}
	return int(time.Now().UnixNano()) % n
}

func (m *Manager) choose(variants ...string) string {
	return variants[m.pick(len(variants))]
}

// HandleTurn processes one user message for the session and returns the
// reply. Validation failures surface as ValidationError; an unexpected
// panic in turn handling is recovered into a technical-difficulty reply
// that clears any pending clarification but keeps the user's name.
func (m *Manager) HandleTurn(ctx context.Context, sessionID, text string) (turn *Turn, err error) {
	start := time.Now()

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, apperrors.NewValidationError("text", "Input 'text' tidak boleh kosong!")
	}
	if utf8.RuneCountInString(trimmed) > m.cfg.MaxInputLength {
		return nil, apperrors.NewValidationError("text", fmt.Sprintf("Input terlalu panjang (maks %d karakter)", m.cfg.MaxInputLength))
	}

	state, loadErr := m.store.Get(ctx, sessionID)
	if loadErr != nil {
		if !errors.Is(loadErr, apperrors.ErrSessionNotFound) {
			return nil, m.wrap.Wrap("load_session", loadErr, technicalDifficultyReply)
		}
		state = &session.State{}
	}

	defer func() {
		if r := recover(); r != nil {
			err = nil
			turn = m.recoverTurn(ctx, sessionID, state, r)
		}
		if turn != nil {
			m.metrics.RecordTurn(turn.Category, time.Since(start).Seconds())
		}
	}()

	turn, err = m.handle(ctx, sessionID, state, trimmed)
	return turn, err
}

func (m *Manager) handle(ctx context.Context, sessionID string, state *session.State, text string) (*Turn, error) {
	lowered := strings.ToLower(text)
	log := m.logger.WithSessionID(sessionID)

	if state.PendingClarification != nil {
		return m.resolveClarification(ctx, sessionID, state, text)
	}

	isOOS, reason := m.scope.Check(lowered)
	m.metrics.RecordScopeDecision(string(reason))
	if isOOS {
		log.Infof("input out of scope: %s", reason)
		return &Turn{
			Reply:    m.outOfScopeReply(state.UserName),
			Category: "out_of_scope_heuristic_" + string(reason),
		}, nil
	}

	if islamicGreetingExpr.MatchString(lowered) {
		reply := m.choose("Wa'alaikumsalam!", "Wa'alaikumussalam.", "Wa'alaikumsalam warahmatullahi wabarakatuh.")
		if safe := safeName(state.UserName); safe != "" {
			reply += fmt.Sprintf(" Ada yang bisa saya bantu, %s?", safe)
		} else {
			reply += " Ada yang bisa saya bantu?"
		}
		return &Turn{Reply: reply, Category: "greeting_islamic_handled"}, nil
	}

	result, err := m.classifier.Classify(ctx, text)
	if err != nil {
		log.WithError(err).Errorf("intent classification failed")
		return &Turn{
			Reply:    "Maaf, sistem NLU sedang tidak aktif. Tidak dapat memproses permintaan Anda saat ini.",
			Category: "nlu_system_unavailable",
		}, nil
	}

	if options := m.ambiguity.Resolve(result); options != nil {
		state.PendingClarification = &session.Clarification{
			Options: options,
			Text:    text,
			Prodi:   detectionNames(result.Prodi),
			Labs:    detectionNames(result.Labs),
		}
		if err := m.store.Put(ctx, sessionID, state); err != nil {
			return nil, m.wrap.Wrap("save_session", err, technicalDifficultyReply)
		}
		m.metrics.RecordClarificationOffered()
		return &Turn{Reply: ClarificationPrompt(options), Category: "intent_disambiguation_prompt"}, nil
	}

	if turn, handled, err := m.handleNameFlow(ctx, sessionID, state, text, result); handled || err != nil {
		return turn, err
	}

	if result.Intent == "" || result.Score < m.cfg.ConfidenceThreshold {
		return &Turn{Reply: m.lowConfidenceReply(state.UserName), Category: "fallback_low_confidence"}, nil
	}

	return m.dispatch(result, state.UserName, text, "handler_error_main"), nil
}

// resolveClarification maps the user's numbered choice back to an intent
// and dispatches it with full confidence, reusing the entities detected
// when the ambiguous question was asked.
func (m *Manager) resolveClarification(ctx context.Context, sessionID string, state *session.State, text string) (*Turn, error) {
	pending := state.PendingClarification
	option, ok := ResolveChoice(text, pending.Options)
	if !ok {
		m.metrics.RecordClarificationResolved("reprompt")
		reply := m.choose(
			"Maaf, pilihan Anda tidak dikenali. Mohon pilih nomor opsi yang tersedia (misal: '1' atau '2').",
			"Pilihan tidak valid. Silakan ketik nomor (1 atau 2) sesuai opsi yang Anda maksud.",
			"Saya belum mengerti. Pilihan Anda seharusnya berupa angka dari daftar yang saya berikan.",
		)
		return &Turn{Reply: reply, Category: "clarification_failed_reprompt"}, nil
	}

	state.PendingClarification = nil
	if err := m.store.Put(ctx, sessionID, state); err != nil {
		return nil, m.wrap.Wrap("save_session", err, technicalDifficultyReply)
	}
	m.metrics.RecordClarificationResolved("success")

	in := response.Input{
		Intent:   option.Intent,
		Score:    1.0,
		UserName: state.UserName,
		Text:     pending.Text,
	}
	if len(pending.Prodi) > 0 {
		in.Prodi = pending.Prodi[0]
	}
	if len(pending.Labs) > 0 {
		in.Lab = pending.Labs[0]
	}
	return m.generate(in, "handler_error_post_clarification"), nil
}

// handleNameFlow covers the name interactions: asking a fresh user for
// their name once, capturing a name the user provides, and replacing a
// stored name on an explicit re-introduction. The second return value
// reports whether the flow produced the reply.
func (m *Manager) handleNameFlow(ctx context.Context, sessionID string, state *session.State, text string, result *nlu.Result) (*Turn, bool, error) {
	nerName, haveNER := FilterModelPersonName(result.Persons, text)
	shortInput := len(strings.Fields(text)) <= 5
	hasIntroPhrase := ContainsNamePhrase(text)

	if state.UserName != "" {
		// Only an explicit introduction ("nama saya Citra") replaces a
		// stored name; a stray person mention never does.
		if !hasIntroPhrase {
			return nil, false, nil
		}
	} else if !hasIntroPhrase && !(haveNER && shortInput && result.Intent != "goodbye_ft") {
		if state.AskedName {
			// The user was just asked for their name. A bare short reply
			// that looks like nothing the intent model recognizes is
			// treated as the name itself.
			if result.Score < m.cfg.ConfidenceThreshold {
				if name, source, ok := ExtractNameByRules(text); ok && source == NameSourceShortText {
					return m.saveName(ctx, sessionID, state, name, source)
				}
			}
			return nil, false, nil
		}
		// One-shot prompt: only for substantive questions, never for
		// small talk, and never twice.
		if result.Intent == "" || result.Score < m.cfg.ConfidenceThreshold {
			return nil, false, nil
		}
		switch result.Intent {
		case "greeting_ft", "ask_bot_identity", "thankyou_ft", "goodbye_ft":
			return nil, false, nil
		}
		state.AskedName = true
		if err := m.store.Put(ctx, sessionID, state); err != nil {
			return nil, false, m.wrap.Wrap("save_session", err, technicalDifficultyReply)
		}
		m.metrics.RecordSlotPrompt("user_name")
		reply := m.choose(
			"Tentu, saya coba bantu jawab. Tapi agar lebih akrab, boleh saya tahu nama Anda? (Contoh: 'nama saya Budi')",
			"Oke, sebelum masuk ke detailnya, Anda ingin dipanggil siapa? (Contoh: 'nama aku Citra')",
			"Siap! Untuk mempermudah komunikasi, boleh perkenalkan diri dulu? (Contoh: 'nama ku Doni' atau 'panggil saja Eka')",
		)
		return &Turn{Reply: reply, Category: "prompt_for_name"}, true, nil
	}

	name := nerName
	source := NameSourceNER
	if name == "" {
		var ok bool
		name, source, ok = ExtractNameByRules(text)
		if !ok {
			reply := m.choose(
				"Hmm, sepertinya saya belum berhasil menangkap nama Anda dengan jelas. Bisa coba sebutkan nama panggilannya saja? (Contoh: 'panggil saja Budi')",
				"Maaf, saya agak kesulitan mengenali namanya. Bisa diulangi? (Contoh: 'nama saya Citra')",
				"Oke, tapi nama yang saya tangkap sepertinya kurang pas. Bisa tolong sebutkan lagi nama Anda? (Contoh: 'nama ku Doni')",
			)
			return &Turn{Reply: reply, Category: "provide_name_failed"}, true, nil
		}
	}
	return m.saveName(ctx, sessionID, state, name, source)
}

func (m *Manager) saveName(ctx context.Context, sessionID string, state *session.State, name string, source NameSource) (*Turn, bool, error) {
	previous := state.UserName
	state.UserName = CanonicalName(name)
	if err := m.store.Put(ctx, sessionID, state); err != nil {
		return nil, false, m.wrap.Wrap("save_session", err, technicalDifficultyReply)
	}
	m.metrics.RecordNameCapture(string(source))
	m.logger.WithSessionID(sessionID).WithField("source", string(source)).Infof("user name captured")

	if previous != "" {
		reply := m.choose(
			fmt.Sprintf("Baik, mulai sekarang saya akan memanggil Anda %s ya.", state.UserName),
			fmt.Sprintf("Oke, nama Anda saya perbarui menjadi %s.", state.UserName),
		)
		return &Turn{Reply: reply, Category: "provide_name_updated"}, true, nil
	}

	reply := m.choose(
		fmt.Sprintf("Baik %s, senang berkenalan! Nama Anda sudah saya ingat. Anda bisa bertanya tentang:\n- Biaya kuliah (Contoh: 'berapa spp informatika?')\n- Jadwal (Contoh: 'jadwal ti hari senin')\n- Info prodi (Contoh: 'info prodi tambang')\nAtau topik lainnya seputar Fakultas Teknik?", state.UserName),
		fmt.Sprintf("Oke %s, terima kasih informasinya! Sekarang, apa yang ingin Anda tanyakan tentang Fakultas Teknik? Misalnya:\n- 'Info pendaftaran mahasiswa baru'\n- 'Cara bayar spp'\n- 'Fasilitas lab sipil'", state.UserName),
		fmt.Sprintf("Siap %s! Silakan ajukan pertanyaan Anda mengenai Fakultas Teknik. Anda bisa tanya soal:\n- Biaya praktikum (Contoh: 'berapa biaya praktikum komputer?')\n- Kontak TU\n- Info prodi tertentu (Contoh: 'info prodi sipil')", state.UserName),
	)
	return &Turn{Reply: reply, Category: "provide_name_handled"}, true, nil
}

// dispatch renders the intent's answer from a full NLU result.
func (m *Manager) dispatch(result *nlu.Result, userName, text, errCategory string) *Turn {
	in := response.Input{
		Intent:   result.Intent,
		Score:    result.Score,
		UserName: userName,
		Text:     text,
	}
	if p := result.FirstProdi(); p != "" {
		in.Prodi = p
	}
	if l := result.FirstLab(); l != "" {
		in.Lab = l
	}
	return m.generate(in, errCategory)
}

// generate calls the response generator, converting a handler panic into
// a per-topic apology instead of failing the whole turn.
func (m *Manager) generate(in response.Input, errCategory string) (turn *Turn) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.WithField("intent", in.Intent).Errorf("response handler panic: %v", r)
			sentry.CaptureException(fmt.Errorf("response handler panic for %q: %v", in.Intent, r))
			turn = &Turn{
				Reply:    fmt.Sprintf("Maaf %sterjadi kesalahan saat memproses permintaan Anda tentang topik tersebut.", midName(in.UserName)),
				Category: errCategory,
			}
		}
	}()
	reply := m.gen.Generate(in)
	return &Turn{Reply: reply.Text, Category: reply.Category}
}

// recoverTurn is the last-resort recovery for a panic anywhere in turn
// handling. It clears a pending clarification so the session does not
// stay wedged, but keeps the user's name.
func (m *Manager) recoverTurn(ctx context.Context, sessionID string, state *session.State, cause any) *Turn {
	err := fmt.Errorf("turn panic: %v", cause)
	m.logger.WithSessionID(sessionID).WithError(err).Errorf("unrecoverable turn failure")
	sentry.CaptureTurnFailure(ctx, err, sessionID)

	if state != nil && state.PendingClarification != nil {
		state.PendingClarification = nil
		if putErr := m.store.Put(ctx, sessionID, state); putErr != nil {
			m.logger.WithSessionID(sessionID).WithError(putErr).Warnf("failed to clear clarification state after panic")
		}
	}

	reply := technicalDifficultyReply
	if state != nil {
		if safe := safeName(state.UserName); safe != "" {
			reply = fmt.Sprintf("Maaf %s, terjadi kendala teknis di sistem saya. Silakan coba beberapa saat lagi.", safe)
		}
	}
	return &Turn{Reply: reply, Category: "internal_server_error"}
}

// ForgetName drops the stored user name and any pending clarification
// so the conversation starts fresh. It returns the removed name, if any.
func (m *Manager) ForgetName(ctx context.Context, sessionID string) (string, error) {
	state, err := m.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSessionNotFound) {
			return "", nil
		}
		return "", m.wrap.Wrap("forget_name", err, forgetNameFailedReply)
	}
	removed := state.UserName
	state.UserName = ""
	state.AskedName = false
	state.PendingClarification = nil
	if err := m.store.Put(ctx, sessionID, state); err != nil {
		return "", m.wrap.Wrap("forget_name", err, forgetNameFailedReply)
	}
	return removed, nil
}

// ResetSession clears the whole session: dialogue state, pending
// clarification, and the user's name.
func (m *Manager) ResetSession(ctx context.Context, sessionID string) error {
	if err := m.store.Delete(ctx, sessionID); err != nil {
		return m.wrap.Wrap("delete_session", err, technicalDifficultyReply)
	}
	return nil
}

func (m *Manager) outOfScopeReply(userName string) string {
	prefix := "Maaf, "
	if safe := safeName(userName); safe != "" {
		prefix = fmt.Sprintf("Maaf %s, ", safe)
	}
	return m.choose(
		prefix+"saya adalah chatbot khusus untuk informasi Fakultas Teknik Universitas Andi Djemma Palopo. Topik pertanyaan Anda sepertinya di luar fokus utama saya.",
		prefix+"saya hanya bisa menjawab pertanyaan terkait akademik, biaya, pendaftaran, dan info umum Fakultas Teknik UNANDA.",
		prefix+"fokus saya adalah seputar Fakultas Teknik UNANDA. Ada hal lain yang bisa saya bantu terkait fakultas?",
	)
}

func (m *Manager) lowConfidenceReply(userName string) string {
	if safe := safeName(userName); safe != "" {
		return m.choose(
			fmt.Sprintf("Maaf %s, saya kurang mengerti maksud pertanyaan Anda. Bisa coba gunakan kalimat lain?", safe),
			fmt.Sprintf("Hmm %s, saya belum bisa memahami pertanyaan itu. Mungkin bisa diperjelas?", safe),
		)
	}
	return m.choose(
		"Maaf, saya kurang mengerti maksud pertanyaan Anda. Bisa coba gunakan kalimat lain?",
		"Hmm, saya belum bisa memahami pertanyaan itu. Mungkin bisa diperjelas?",
		"Maaf, bisa coba tanyakan dengan cara berbeda? Saya masih belajar.",
		"Saya di sini untuk membantu seputar Fakultas Teknik UNANDA. Ada pertanyaan lain?",
	)
}

func safeName(name string) string {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 2 {
		return ""
	}
	switch strings.ToLower(trimmed) {
	case "saya", "aku", "admin", "bot":
		return ""
	}
	return trimmed
}

func midName(name string) string {
	if safe := safeName(name); safe != "" {
		return safe + ", "
	}
	return ""
}

func detectionNames(detections []nlu.Detection) []string {
	if len(detections) == 0 {
		return nil
	}
	names := make([]string, len(detections))
	for i, d := range detections {
		names[i] = d.Canonical
	}
	return names
}
