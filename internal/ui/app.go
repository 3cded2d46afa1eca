package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rosedew/blush/internal/catalog"
	"github.com/rosedew/blush/internal/persist"
	"github.com/rosedew/blush/internal/prefs"
	"github.com/rosedew/blush/internal/store"
)

// View represents the current active screen.
type View int

const (
	ViewOnboarding View = iota
	ViewLogin
	ViewRegister
	ViewHome
	ViewDetail
	ViewCart
	ViewWishlist
	ViewOffers
	ViewProfile
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    catalog.Fetcher
	Store     *store.Store
	Sync      *persist.Synchronizer
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    catalog.Fetcher
	store     *store.Store
	sync      *persist.Synchronizer
	prefsPath string

	// UI state
	keys        keyMap
	theme       Theme
	styles      Styles
	width       int
	height      int
	ready       bool
	currentView View
	showHelp    bool

	// Latest store snapshot; refreshed after every dispatch.
	state store.State

	// Home state
	selected      int
	searchMode    bool
	searchInput   textinput.Model
	remoteResults []catalog.Product // non-nil after a committed remote search
	category      string            // empty means all categories
	spin          spinner.Model

	// Detail state
	detail         *catalog.Product
	detailFrom     View
	detailViewport viewport.Model

	// Cart state
	cartSelected    int
	checkoutConfirm bool
	orderRef        string

	// Wishlist / offers selection
	wishSelected  int
	offerSelected int

	// Auth forms
	loginInputs [2]textinput.Model
	regInputs   [3]textinput.Model
	formFocus   int
	formErr     string

	// Onboarding / profile
	onboardPage   int
	profileNotice string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Rosewater"
	}
	theme := GetTheme(themeName)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	search := textinput.New()
	search.Placeholder = "search products"
	search.CharLimit = 64

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := Model{
		ctx:         ctx,
		client:      opts.Client,
		store:       opts.Store,
		sync:        opts.Sync,
		prefsPath:   prefsPath,
		keys:        DefaultKeyMap(),
		theme:       theme,
		styles:      theme.Styles(),
		searchInput: search,
		spin:        spin,
		currentView: ViewOnboarding,
	}
	m.initAuthInputs()

	if opts.Store != nil {
		m.state = opts.Store.State()
		// A hydrated session skips onboarding entirely.
		if m.state.LoggedIn() {
			m.currentView = ViewHome
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		m.spin.Tick,
	}
	if m.client != nil {
		cmds = append(cmds, m.loadCatalogCmd())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(msg.Width, contentHeight(msg.Height))
		} else {
			m.detailViewport.Width = msg.Width
			m.detailViewport.Height = contentHeight(msg.Height)
		}
		m.ready = true
		m.updateDetailViewport()
		return m, nil

	case catalogMsg:
		m.dispatch(store.SetCatalog{Products: msg})
		m.clampSelections()
		return m, nil

	case catalogErrMsg:
		m.dispatch(store.SetError{Message: "Failed to load catalog"})
		return m, nil

	case searchResultsMsg:
		m.remoteResults = msg
		m.selected = 0
		return m, nil

	case searchErrMsg:
		m.dispatch(store.SetError{Message: "Search failed"})
		return m, nil

	case productMsg:
		if m.detail != nil && m.detail.ID == msg.ID {
			product := catalog.Product(msg)
			m.detail = &product
			m.updateDetailViewport()
		}
		return m, nil

	case productErrMsg:
		// The list copy of the product is already on screen; a failed
		// refresh is not worth surfacing.
		return m, nil

	case clearedMsg:
		if msg.err != nil {
			m.profileNotice = "Could not clear saved data: " + msg.err.Error()
			m.state = m.store.State()
			return m, nil
		}
		m.state = m.store.State()
		m.resetAfterSignOut()
		m.currentView = ViewOnboarding
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	switch m.currentView {
	case ViewOnboarding:
		return m.renderOnboarding()
	case ViewLogin, ViewRegister:
		return m.renderAuth()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderContent() string {
	switch m.currentView {
	case ViewHome:
		return m.renderHome()
	case ViewDetail:
		return m.renderDetail()
	case ViewCart:
		return m.renderCart()
	case ViewWishlist:
		return m.renderWishlist()
	case ViewOffers:
		return m.renderOffers()
	case ViewProfile:
		return m.renderProfile()
	default:
		return ""
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay swallows the next key.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Pre-login screens manage their own keys.
	switch m.currentView {
	case ViewOnboarding:
		return m.handleOnboardingKey(msg)
	case ViewLogin, ViewRegister:
		return m.handleAuthKey(msg)
	}

	// Search input grabs the keyboard while active.
	if m.searchMode {
		return m.handleSearchKey(msg)
	}

	// Checkout confirmation grabs the keyboard while open.
	if m.checkoutConfirm {
		return m.handleCheckoutKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case key.Matches(msg, m.keys.ViewHome):
		m.currentView = ViewHome
		return m, nil

	case key.Matches(msg, m.keys.ViewCart):
		m.cartSelected = 0
		m.currentView = ViewCart
		return m, nil

	case key.Matches(msg, m.keys.ViewWishlist):
		m.wishSelected = 0
		m.currentView = ViewWishlist
		return m, nil

	case key.Matches(msg, m.keys.ViewOffers):
		m.offerSelected = 0
		m.currentView = ViewOffers
		return m, nil

	case key.Matches(msg, m.keys.ViewProfile):
		m.profileNotice = ""
		m.currentView = ViewProfile
		return m, nil
	}

	switch m.currentView {
	case ViewHome:
		return m.handleHomeKey(msg)
	case ViewDetail:
		return m.handleDetailKey(msg)
	case ViewCart:
		return m.handleCartKey(msg)
	case ViewWishlist:
		return m.handleWishlistKey(msg)
	case ViewOffers:
		return m.handleOffersKey(msg)
	case ViewProfile:
		return m.handleProfileKey(msg)
	}

	return m, nil
}

// dispatch applies an action and refreshes the model's snapshot.
func (m *Model) dispatch(a store.Action) {
	m.store.Dispatch(a)
	m.state = m.store.State()
}

// resetAfterSignOut clears per-screen state that referenced the old session.
func (m *Model) resetAfterSignOut() {
	m.selected = 0
	m.cartSelected = 0
	m.wishSelected = 0
	m.offerSelected = 0
	m.remoteResults = nil
	m.category = ""
	m.detail = nil
	m.orderRef = ""
	m.checkoutConfirm = false
	m.formErr = ""
	m.formFocus = 0
	m.initAuthInputs()
}

// clampSelections keeps list cursors in range after the catalog changes.
func (m *Model) clampSelections() {
	if n := len(m.visibleProducts()); m.selected >= n {
		m.selected = max(0, n-1)
	}
	if n := len(m.state.Cart); m.cartSelected >= n {
		m.cartSelected = max(0, n-1)
	}
	if n := len(m.state.Wishlist); m.wishSelected >= n {
		m.wishSelected = max(0, n-1)
	}
	if n := len(m.offerProducts()); m.offerSelected >= n {
		m.offerSelected = max(0, n-1)
	}
}

func contentHeight(total int) int {
	// Header and footer each take one line.
	if total <= 2 {
		return 1
	}
	return total - 2
}

// Messages

type catalogMsg []catalog.Product

type catalogErrMsg struct{ err error }

type searchResultsMsg []catalog.Product

type searchErrMsg struct{ err error }

type productMsg catalog.Product

type productErrMsg struct{ err error }

type clearedMsg struct{ err error }

// Commands

func (m Model) loadCatalogCmd() tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		products, err := client.FetchProducts(ctx)
		if err != nil {
			return catalogErrMsg{err}
		}
		return catalogMsg(products)
	}
}

func (m Model) searchCmd(query string) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		products, err := client.SearchProducts(ctx, query)
		if err != nil {
			return searchErrMsg{err}
		}
		return searchResultsMsg(products)
	}
}

func (m Model) fetchProductCmd(id int) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		product, err := client.FetchProduct(ctx, id)
		if err != nil {
			return productErrMsg{err}
		}
		return productMsg(*product)
	}
}

func (m Model) clearAllCmd() tea.Cmd {
	ctx, sync := m.ctx, m.sync
	return func() tea.Msg {
		return clearedMsg{err: sync.ClearAll(ctx)}
	}
}

// Run starts the Bubble Tea program. The context cancels the program, so a
// SIGINT/SIGTERM delivered to the process tears the UI down cleanly.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if err != nil && m.ctx.Err() != nil {
		// A signal-cancelled context kills the program; that is a clean exit.
		return nil
	}
	return err
}
