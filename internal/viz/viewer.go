package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	rotateStep = 5.0
	panStep    = 0.1
	panelWidth = 38
)

var canvasStyle = lipgloss.NewStyle().Padding(1, 2)

// Viewer is an interactive Bubble Tea model around one figure.
type Viewer struct {
	fig           Figure
	camera        *Camera
	initial       Camera
	theme         Theme
	hidden        map[int]bool
	// selected is the sheet the space key toggles.
	selected      int
	width, height int
	showHelp      bool
}

func NewViewer(fig Figure, cam *Camera, theme Theme) Viewer {
	return Viewer{
		fig:     fig,
		camera:  cam,
		initial: *cam,
		theme:   theme,
		hidden:  make(map[int]bool),
		width:   120,
		height:  36,
	}
}

func (v Viewer) Init() tea.Cmd { return nil }

func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg)
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
	}
	return v, nil
}

func (v Viewer) handleKey(msg tea.KeyMsg) (Viewer, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c", "esc":
		return v, tea.Quit
	case "left", "h":
		v.camera.Rotate(-rotateStep)
	case "right", "l":
		v.camera.Rotate(rotateStep)
	case "up", "k":
		v.camera.Tilt(rotateStep)
	case "down", "j":
		v.camera.Tilt(-rotateStep)
	case "+", "=":
		v.camera.ZoomIn()
	case "-", "_":
		v.camera.ZoomOut()
	case "w":
		v.camera.Pan(0, panStep)
	case "s":
		v.camera.Pan(0, -panStep)
	case "a":
		v.camera.Pan(-panStep, 0)
	case "d":
		v.camera.Pan(panStep, 0)
	case "t":
		v.theme = NextTheme(v.theme)
	case "r":
		*v.camera = v.initial
	case "?":
		v.showHelp = !v.showHelp
	case "0":
		v.hidden = make(map[int]bool)
	case "[":
		v.selectSheet(v.selected - 1)
	case "]":
		v.selectSheet(v.selected + 1)
	case " ":
		v.toggleSheet(v.selected)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			k := int(key[0] - '1')
			if k < v.sheetCount() {
				v.selected = k
				v.toggleSheet(k)
			}
		}
	}
	return v, nil
}

func (v Viewer) sheetCount() int {
	if v.fig.Surface == nil {
		return 0
	}
	return len(v.fig.Surface.Sheets)
}

// selectSheet moves the selection, wrapping around at both ends.
func (v *Viewer) selectSheet(k int) {
	n := v.sheetCount()
	if n == 0 {
		return
	}
	v.selected = ((k % n) + n) % n
}

// toggleSheet copies the hidden set so earlier model values stay unchanged.
func (v *Viewer) toggleSheet(k int) {
	if k < 0 || k >= v.sheetCount() {
		return
	}
	hidden := make(map[int]bool, len(v.hidden)+1)
	for i, h := range v.hidden {
		hidden[i] = h
	}
	hidden[k] = !hidden[k]
	v.hidden = hidden
}

func (v Viewer) canvasSize() (int, int) {
	w := v.width - panelWidth - 6
	h := v.height - 4
	if w < 20 {
		w = 20
	}
	if h < 10 {
		h = 10
	}
	return w, h
}

func (v Viewer) View() string {
	if v.fig.Surface == nil {
		return ErrEmptyFigure.Error() + "\n"
	}
	w, h := v.canvasSize()
	canvas, err := Rasterize(v.fig, v.camera, w, h, MeshOptions{Lines: DefaultMeshLines, Hidden: v.hidden, Axes: true})
	if err != nil {
		return err.Error() + "\n"
	}
	canvasView := canvasStyle.Render(canvas.StyledString(v.theme.LayerStyle()))
	muted := lipgloss.NewStyle().Foreground(v.theme.Muted)
	accent := lipgloss.NewStyle().Foreground(v.theme.Accent).Bold(true)

	var s strings.Builder
	s.WriteString(HeaderStyle.Render(strings.ToUpper(v.fig.Label)) + "\n")
	s.WriteString(muted.Render(v.fig.Title) + "\n\n")
	s.WriteString(MetricLabel.Render("Sheets") + MetricValue.Render(fmt.Sprintf("%d", len(v.fig.Surface.Sheets))) + "\n")
	s.WriteString(MetricLabel.Render("Grid") + MetricValue.Render(fmt.Sprintf("%d×%d", len(v.fig.Surface.Radii), len(v.fig.Surface.Angles))) + "\n")
	s.WriteString(MetricLabel.Render("Elevation") + MetricValue.Render(fmt.Sprintf("%.0f°", v.camera.Elevation)) + "\n")
	s.WriteString(MetricLabel.Render("Azimuth") + MetricValue.Render(fmt.Sprintf("%.0f°", v.camera.Azimuth)) + "\n")
	s.WriteString(MetricLabel.Render("Zoom") + MetricValue.Render(fmt.Sprintf("%.2fx", v.camera.Zoom)) + "\n")
	s.WriteString(MetricLabel.Render("Theme") + MetricValue.Render(v.theme.Name) + "\n\n")

	s.WriteString(Separator(panelWidth-6) + "\n")
	for _, sh := range v.fig.Surface.Sheets {
		cursor := "  "
		if sh.Index == v.selected {
			cursor = accent.Render("▸ ")
		}
		style := lipgloss.NewStyle().Foreground(v.theme.SheetColor(sh.Index))
		mark := "■"
		if v.hidden[sh.Index] {
			mark = "□"
			style = muted
		}
		s.WriteString(cursor + style.Render(fmt.Sprintf("%s sheet %d", mark, sh.Index)) + "\n")
	}
	s.WriteString("\n" + muted.Render(fmt.Sprintf("x %s  y %s", v.fig.XLabel, v.fig.YLabel)) + "\n")
	s.WriteString(muted.Render("z "+v.fig.ZLabel) + "\n")
	s.WriteString(muted.Render("z ticks "+TickLabels(v.fig.ZTicks)) + "\n")
	s.WriteString(muted.MarginTop(1).Render("←→↑↓:Rotate +/-:Zoom\nWASD:Pan 1-9:Sheet T:Theme\n[ ]:Select Space:Toggle\nR:Reset ?:Help Q:Quit"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panelStyle.Render(s.String()))
	if v.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  ←/→ h/l  - Rotate azimuth           ║
║  ↑/↓ k/j  - Change elevation         ║
║  +/-      - Zoom in/out              ║
║  W/A/S/D  - Pan                      ║
║  1..9     - Toggle sheet             ║
║  [ / ]    - Select previous/next     ║
║  Space    - Toggle selected sheet    ║
║  0        - Show all sheets          ║
║  T        - Cycle themes             ║
║  R        - Reset camera             ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// RunViewer opens the interactive viewer on the alternate screen.
func RunViewer(fig Figure, cam *Camera, theme Theme) error {
	if fig.Surface == nil {
		return ErrEmptyFigure
	}
	_, err := tea.NewProgram(NewViewer(fig, cam, theme), tea.WithAltScreen()).Run()
	return err
}
