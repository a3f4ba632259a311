package tui

import (
	"context"
	"slices"
	"strconv"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-transcript-keeper/internal/app"
	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
	"github.com/MKhiriev/go-transcript-keeper/internal/service"
	"github.com/MKhiriev/go-transcript-keeper/internal/stats"
	"github.com/MKhiriev/go-transcript-keeper/models"
)

const revisionPollInterval = time.Second

type mode int

const (
	modeList mode = iota
	modeDetail
	modeAdd
	modeFilter
	modeInfo
)

// Operation names carried by opDoneMsg.
const (
	opStartup   = "startup"
	opCreate    = "create"
	opVerify    = "verify"
	opDecrypt   = "decrypt"
	opReload    = "reload"
	opAvailable = "availability"
)

type model struct {
	ctx        context.Context
	controller service.RecordController
	build      models.AppBuildInfo
	log        *logger.Logger

	statuses <-chan models.Status
	status   models.Status

	mode     mode
	views    []models.RecordView
	visible  []models.RecordView
	stats    models.Stats
	revision uint64

	// categories[0] is always stats.AllCategories.
	categories  []string
	categoryIdx int
	query       textinput.Model
	cursor      int

	form    addForm
	prompts []approvalRequestMsg
	spinner spinner.Model
	busy    int

	copy func(string) error
}

func newModel(ctx context.Context, controller service.RecordController, build models.AppBuildInfo, log *logger.Logger) model {
	query := textinput.New()
	query.Placeholder = "course name"
	query.Prompt = "/ "
	query.CharLimit = 64

	m := model{
		ctx:        ctx,
		controller: controller,
		build:      build,
		log:        log,
		statuses:   controller.Notifier().Subscribe(),
		status:     controller.Notifier().Current(),
		categories: []string{stats.AllCategories},
		query:      query,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		copy:       clipboard.WriteAll,
	}
	m.refresh()

	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.startup(),
		m.waitForStatus(),
		revisionTick(),
		m.spinner.Tick,
	)
}

// startup shows the cached snapshot first, then prepares the gateway and
// loads the ledger state. Failures are already on the banner.
func (m model) startup() tea.Cmd {
	warm := func() tea.Msg {
		if err := m.controller.WarmStart(m.ctx); err != nil {
			m.log.Warn().Err(err).Msg("warm start from snapshot failed")
		}
		return revisionTickMsg{}
	}
	initAndLoad := func() tea.Msg {
		if err := m.controller.InitGateway(m.ctx); err != nil {
			return opDoneMsg{op: opStartup, err: err}
		}
		return opDoneMsg{op: opStartup, err: m.controller.Reload(m.ctx)}
	}
	return tea.Sequence(warm, initAndLoad)
}

func (m model) waitForStatus() tea.Cmd {
	ch := m.statuses
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return statusMsg(s)
	}
}

func revisionTick() tea.Cmd {
	return tea.Tick(revisionPollInterval, func(time.Time) tea.Msg { return revisionTickMsg{} })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case approvalRequestMsg:
		m.prompts = append(m.prompts, msg)
		return m, nil

	case statusMsg:
		m.status = models.Status(msg)
		return m, m.waitForStatus()

	case revisionTickMsg:
		if m.controller.Revision() != m.revision {
			m.refresh()
		}
		return m, revisionTick()

	case opDoneMsg:
		if m.busy > 0 {
			m.busy--
		}
		if msg.err != nil {
			m.log.Debug().Err(msg.err).Str("op", msg.op).Msg("operation finished with error")
		}
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.declineAll()
			return m, tea.Quit
		}
		if len(m.prompts) > 0 {
			return m.updatePrompt(msg)
		}
		switch m.mode {
		case modeAdd:
			return m.updateAdd(msg)
		case modeFilter:
			return m.updateFilter(msg)
		case modeDetail:
			return m.updateDetail(msg)
		case modeInfo:
			if key.Matches(msg, keys.esc, keys.quit) {
				m.mode = modeList
			}
			return m, nil
		default:
			return m.updateList(msg)
		}
	}

	var cmd tea.Cmd
	switch m.mode {
	case modeAdd:
		m.form, cmd = m.form.update(msg)
	case modeFilter:
		m.query, cmd = m.query.Update(msg)
	}
	return m, cmd
}

func (m model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var approved bool
	switch {
	case key.Matches(msg, keys.yes):
		approved = true
	case key.Matches(msg, keys.no):
	default:
		return m, nil
	}

	m.prompts[0].reply <- approved
	m.prompts = m.prompts[1:]
	return m, nil
}

func (m *model) declineAll() {
	for _, p := range m.prompts {
		p.reply <- false
	}
	m.prompts = nil
}

func (m model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.declineAll()
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.enter):
		if _, ok := m.selected(); ok {
			m.mode = modeDetail
		}
	case key.Matches(msg, keys.add):
		m.form = newAddForm()
		m.mode = modeAdd
		return m, textinput.Blink
	case key.Matches(msg, keys.filter):
		m.mode = modeFilter
		return m, m.query.Focus()
	case key.Matches(msg, keys.category):
		m.categoryIdx = (m.categoryIdx + 1) % len(m.categories)
		m.applyFilter()
	case key.Matches(msg, keys.info):
		m.mode = modeInfo
	case key.Matches(msg, keys.reload):
		return m.start(opReload, m.reload)
	case key.Matches(msg, keys.available):
		return m.start(opAvailable, func(ctx context.Context) error {
			_, err := m.controller.CheckAvailability(ctx)
			return err
		})
	default:
		return m.recordAction(msg)
	}

	return m, nil
}

func (m model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc, keys.quit) {
		m.mode = modeList
		return m, nil
	}
	return m.recordAction(msg)
}

// recordAction handles the keys acting on the selected record.
func (m model) recordAction(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view, ok := m.selected()
	if !ok {
		return m, nil
	}
	id := view.ID

	switch {
	case key.Matches(msg, keys.verify):
		return m.start(opVerify, func(ctx context.Context) error {
			_, err := m.controller.RevealRecord(ctx, id)
			return err
		})
	case key.Matches(msg, keys.decrypt):
		return m.start(opDecrypt, func(ctx context.Context) error {
			_, err := m.controller.RevealLocally(ctx, id)
			return err
		})
	case key.Matches(msg, keys.copy):
		m.copyValue(view)
	}

	return m, nil
}

func (m model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form = m.form.move(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form = m.form.move(-1)
		return m, nil
	case key.Matches(msg, keys.enter):
		in, err := m.form.input()
		if err != nil {
			m.form.err = err.Error()
			return m, nil
		}
		in.Owner = m.controller.Owner()
		m.mode = modeList
		return m.start(opCreate, func(ctx context.Context) error {
			return m.controller.CreateRecord(ctx, in)
		})
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		m.query.Blur()
		m.mode = modeList
		return m, nil
	case key.Matches(msg, keys.esc):
		m.query.Reset()
		m.query.Blur()
		m.mode = modeList
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	m.applyFilter()
	return m, cmd
}

// start runs fn off the UI loop and reports back with opDoneMsg.
func (m model) start(op string, fn func(ctx context.Context) error) (tea.Model, tea.Cmd) {
	m.busy++
	ctx := m.ctx
	return m, func() tea.Msg {
		return opDoneMsg{op: op, err: fn(ctx)}
	}
}

func (m model) reload(ctx context.Context) error {
	notifier := m.controller.Notifier()
	notifier.Pending(app.StatusLoading)
	if err := m.controller.Reload(ctx); err != nil {
		return err
	}
	notifier.Success(app.StatusReloaded)
	return nil
}

func (m model) copyValue(view models.RecordView) {
	notifier := m.controller.Notifier()
	if view.Value == nil {
		notifier.Error(models.FailureValidation, app.StatusNothingToCopy)
		return
	}
	if err := m.copy(strconv.FormatInt(*view.Value, 10)); err != nil {
		m.log.Err(err).Msg("clipboard write failed")
		notifier.Error(models.FailureNone, app.StatusCopyFailed)
		return
	}
	notifier.Success(app.StatusCopied)
}

func (m model) selected() (models.RecordView, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return models.RecordView{}, false
	}
	return m.visible[m.cursor], true
}

// refresh takes a new snapshot from the controller, keeping the selected
// category when it still exists.
func (m *model) refresh() {
	m.views = m.controller.Views()
	m.stats = m.controller.Stats()
	m.revision = m.controller.Revision()

	current := m.categories[m.categoryIdx]
	records := make([]models.Record, 0, len(m.views))
	for _, v := range m.views {
		records = append(records, v.Record)
	}
	m.categories = append([]string{stats.AllCategories}, stats.Categories(records)...)
	m.categoryIdx = max(slices.Index(m.categories, current), 0)

	m.applyFilter()
}

func (m *model) applyFilter() {
	var selectedID string
	if v, ok := m.selected(); ok {
		selectedID = v.ID
	}

	m.visible = stats.Filter(m.views, m.query.Value(), m.categories[m.categoryIdx])

	m.cursor = slices.IndexFunc(m.visible, func(v models.RecordView) bool { return v.ID == selectedID })
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.mode == modeDetail && len(m.visible) == 0 {
		m.mode = modeList
	}
}
