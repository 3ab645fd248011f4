package viz

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/chamber/internal/config"
	"github.com/san-kum/chamber/internal/event"
	"github.com/san-kum/chamber/internal/numbering"
	"github.com/san-kum/chamber/internal/particle"
	"github.com/san-kum/chamber/internal/render"
	"github.com/san-kum/chamber/internal/score"
)

const sidebarWidth = 32

// App is the interactive chamber display. All event state is replaced
// wholesale on regeneration; the renderer recomputes everything per frame.
type App struct {
	cfg      *config.Config
	rng      *rand.Rand
	registry *event.Registry
	scenario string

	ev   *event.Event
	nums *numbering.Map
	view render.View
	mode render.Mode

	pointer   *render.Pointer
	lastHover time.Time
	throttle  time.Duration
	dragging  bool
	dragX     int
	dragY     int

	theme    Theme
	themeIdx int

	showForm bool
	form     formState
	result   float64
	scored   bool

	width, height int
	canvas        *Canvas
}

// formState is the identification form: one symbol pick per display index
// plus the neutrino-count guess.
type formState struct {
	cursor  int
	choices map[int]int // display index -> index into particle.Choices(), -1 unanswered
	nuBuf   string
}

func NewApp(cfg *config.Config) *App {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	theme := GetTheme(cfg.Theme)
	themeIdx := 0
	for i, t := range Themes {
		if t.Name == theme.Name {
			themeIdx = i
		}
	}
	a := &App{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		registry: event.NewRegistry(),
		scenario: cfg.Scenario,
		mode:     render.ModeNumbered,
		theme:    theme,
		themeIdx: themeIdx,
		throttle: time.Duration(cfg.View.HoverThrottleMs) * time.Millisecond,
		width:    80,
		height:   24,
	}
	a.layout()
	a.view.Scale = cfg.View.Zoom
	a.generate()
	return a
}

// RunInteractive starts the TUI with mouse reporting enabled.
func RunInteractive(cfg *config.Config) error {
	_, err := tea.NewProgram(NewApp(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

func (a *App) layout() {
	cw := a.width - sidebarWidth - 1
	if cw < 20 {
		cw = 20
	}
	ch := a.height - 2
	if ch < 8 {
		ch = 8
	}
	a.canvas = NewCanvas(cw, ch)
	scale := a.view.Scale
	if scale == 0 {
		scale = 1
	}
	// Screen space is the canvas sub-pixel grid: 2 dots per column, 4 per row.
	a.view = render.View{W: cw * 2, H: ch * 4, Scale: scale, PanX: a.view.PanX, PanY: a.view.PanY}
}

// generate replaces the whole event; nothing from the previous one survives.
func (a *App) generate() {
	ev, err := a.registry.Generate(a.scenario, a.rng)
	if err != nil {
		return
	}
	a.ev = ev
	a.nums = numbering.New(ev, a.rng)
	a.mode = render.ModeNumbered
	a.pointer = nil
	a.showForm = false
	a.scored = false
	a.form = formState{choices: make(map[int]int)}
	for d := 1; d <= ev.N; d++ {
		a.form.choices[d] = -1
	}
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.layout()
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.MouseMsg:
		a.handleMouse(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.showForm {
		a.formKey(msg)
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "n":
		a.generate()
	case "v":
		if a.mode == render.ModeNumbered {
			a.mode = render.ModeIdentified
		} else {
			a.mode = render.ModeNumbered
		}
	case "i":
		if a.ev != nil {
			a.showForm = true
			a.form.cursor = 0
		}
	case "t":
		a.themeIdx = (a.themeIdx + 1) % len(Themes)
		a.theme = Themes[a.themeIdx]
	case "s":
		a.cycleScenario()
	case "+", "=":
		a.view = a.view.Zoom(a.zoomStep())
	case "-", "_":
		a.view = a.view.Zoom(1 / a.zoomStep())
	case "left":
		a.view = a.view.Pan(8, 0)
	case "right":
		a.view = a.view.Pan(-8, 0)
	case "up":
		a.view = a.view.Pan(0, 8)
	case "down":
		a.view = a.view.Pan(0, -8)
	case "0":
		a.view.Scale, a.view.PanX, a.view.PanY = 1, 0, 0
	}
	return a, nil
}

func (a *App) zoomStep() float64 {
	if a.cfg.View.ZoomStep > 1 {
		return a.cfg.View.ZoomStep
	}
	return render.ZoomStep
}

func (a *App) cycleScenario() {
	names := a.registry.List()
	for i, name := range names {
		if name == a.scenario {
			a.scenario = names[(i+1)%len(names)]
			a.generate()
			return
		}
	}
	a.scenario = names[0]
	a.generate()
}

// handleMouse maps terminal cell coordinates into the canvas sub-pixel
// space the renderer works in. Panning applies immediately; hover updates
// are throttled to bound recomputation under fast pointer movement.
func (a *App) handleMouse(msg tea.MouseMsg) {
	px := float64(msg.X * 2)
	py := float64(msg.Y * 4)

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		a.view = a.view.Zoom(a.zoomStep())
	case msg.Button == tea.MouseButtonWheelDown:
		a.view = a.view.Zoom(1 / a.zoomStep())
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		// A press on a label is a selection, not a pan.
		ptr := &render.Pointer{X: px, Y: py}
		f := render.Draw(a.ev, a.nums, a.view, a.mode, ptr)
		if f.Hover == nil {
			a.dragging = true
			a.dragX, a.dragY = msg.X, msg.Y
		} else {
			a.pointer = ptr
		}
	case msg.Action == tea.MouseActionRelease:
		a.dragging = false
	case msg.Action == tea.MouseActionMotion && a.dragging:
		a.view = a.view.Pan(float64((msg.X-a.dragX)*2), float64((msg.Y-a.dragY)*4))
		a.dragX, a.dragY = msg.X, msg.Y
	case msg.Action == tea.MouseActionMotion:
		if time.Since(a.lastHover) >= a.throttle {
			a.pointer = &render.Pointer{X: px, Y: py}
			a.lastHover = time.Now()
		}
	}
}

func (a *App) formKey(msg tea.KeyMsg) {
	n := a.ev.N
	last := n + 1 // rows: 0..n-1 particles, n = neutrino guess, n+1 = submit

	switch msg.String() {
	case "esc", "i":
		a.showForm = false
	case "up", "k":
		if a.form.cursor > 0 {
			a.form.cursor--
		}
	case "down", "j":
		if a.form.cursor < last {
			a.form.cursor++
		}
	case "left", "h":
		if a.form.cursor < n {
			a.cycleChoice(a.form.cursor+1, -1)
		}
	case "right", "l":
		if a.form.cursor < n {
			a.cycleChoice(a.form.cursor+1, 1)
		}
	case "backspace":
		if a.form.cursor == n && len(a.form.nuBuf) > 0 {
			a.form.nuBuf = a.form.nuBuf[:len(a.form.nuBuf)-1]
		}
	case "enter":
		if a.form.cursor == last {
			a.submit()
		}
	default:
		s := msg.String()
		if a.form.cursor == n && len(s) == 1 && s[0] >= '0' && s[0] <= '9' && len(a.form.nuBuf) < 2 {
			a.form.nuBuf += s
		}
	}
}

func (a *App) cycleChoice(display, dir int) {
	options := particle.Choices()
	cur := a.form.choices[display]
	next := cur + dir
	if next >= len(options) {
		next = -1
	}
	if next < -1 {
		next = len(options) - 1
	}
	a.form.choices[display] = next
}

func (a *App) submit() {
	options := particle.Choices()
	answers := make(map[int]string)
	for display, pick := range a.form.choices {
		if pick >= 0 {
			answers[display] = options[pick].Symbol
		}
	}
	guess := score.NoGuess
	if v, err := strconv.Atoi(a.form.nuBuf); err == nil {
		guess = v
	}
	a.result = score.Score(a.nums.DisplayedSymbols(a.ev), answers, guess, a.ev.Neutrinos)
	a.scored = true
	a.showForm = false
	a.mode = render.ModeIdentified
}

func (a *App) View() string {
	if a.ev == nil {
		return "\n  no event — press n to generate\n"
	}

	frame := render.Draw(a.ev, a.nums, a.view, a.mode, a.pointer)

	a.canvas.Clear()
	for _, op := range frame.Ops {
		style := a.theme.strokeStyle(op.Class, op.Charge, op.Dim)
		for i := 1; i < len(op.Points); i++ {
			p0, p1 := op.Points[i-1], op.Points[i]
			if !finite(p0.X, p0.Y, p1.X, p1.Y) {
				continue
			}
			a.canvas.DrawLine(int(p0.X), int(p0.Y), int(p1.X), int(p1.Y), &style, op.Dashed)
		}
	}
	for _, l := range frame.Labels {
		hovered := frame.Hover != nil && frame.Hover.Seq == l.Seq
		a.canvas.Label(int(l.Pos.X)/2, int(l.Pos.Y)/4, l.Text, a.theme.labelStyle(hovered))
	}

	side := a.sidebar(frame)
	if a.showForm {
		side = a.formView()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, a.canvas.String(), side)
	return body + "\n" + a.helpLine()
}

func (a *App) sidebar(frame *render.Frame) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("BUBBLE CHAMBER") + "\n\n")
	b.WriteString(dimStyle.Render("scenario  ") + valueStyle.Render(a.scenario) + "\n")
	b.WriteString(dimStyle.Render("particles ") + valueStyle.Render(strconv.Itoa(a.ev.N)) + "\n")
	if a.mode == render.ModeIdentified {
		b.WriteString(dimStyle.Render("neutrinos ") + valueStyle.Render(strconv.Itoa(a.ev.Neutrinos)) + "\n")
	}
	b.WriteString(dimStyle.Render("zoom      ") + valueStyle.Render(fmt.Sprintf("%.1fx", a.view.Scale)) + "\n")
	b.WriteString(dimStyle.Render("theme     ") + valueStyle.Render(a.theme.Name) + "\n")

	if frame.Hover != nil {
		b.WriteString("\n" + dimStyle.Render("hover     "))
		if a.mode == render.ModeIdentified {
			b.WriteString(valueStyle.Render(frame.Hover.Symbol))
		} else {
			b.WriteString(valueStyle.Render("#" + strconv.Itoa(frame.Hover.Display)))
		}
		b.WriteString("\n")
	}
	if a.scored {
		b.WriteString("\n" + dimStyle.Render("score     ") + scoreStyle.Render(fmt.Sprintf("%.1f", a.result)) + "\n")
	}
	return lipgloss.NewStyle().Width(sidebarWidth).PaddingLeft(1).Render(b.String())
}

func (a *App) formView() string {
	options := particle.Choices()
	var b strings.Builder
	b.WriteString(headerStyle.Render("IDENTIFY") + "\n\n")

	for d := 1; d <= a.ev.N; d++ {
		row := d - 1
		pick := "—"
		if c := a.form.choices[d]; c >= 0 {
			pick = options[c].Symbol
		}
		line := fmt.Sprintf("#%-3d %s", d, pick)
		if a.form.cursor == row {
			b.WriteString(cursorStyle.Render("▸ "+line) + "\n")
		} else {
			b.WriteString(dimStyle.Render("  "+line) + "\n")
		}
	}

	nuLine := "neutrinos: " + a.form.nuBuf + "_"
	if a.form.cursor == a.ev.N {
		b.WriteString(cursorStyle.Render("▸ "+nuLine) + "\n")
	} else {
		b.WriteString(dimStyle.Render("  neutrinos: "+a.form.nuBuf) + "\n")
	}

	if a.form.cursor == a.ev.N+1 {
		b.WriteString("\n" + cursorStyle.Render("▸ submit") + "\n")
	} else {
		b.WriteString("\n" + dimStyle.Render("  submit") + "\n")
	}

	return formStyle.Width(sidebarWidth - 2).Render(b.String())
}

func (a *App) helpLine() string {
	if a.showForm {
		return helpStyle.Render("  j/k rows  h/l pick  digits ν-count  enter submit  esc close")
	}
	return helpStyle.Render("  n new  v reveal  i identify  s scenario  t theme  +/- zoom  drag pan  q quit")
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
