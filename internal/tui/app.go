// Package tui implements the interactive terminal client. It drives the
// same usecase layer as the HTTP handlers, so the two surfaces cannot drift.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"movie-booking/internal/dto/request"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"
)

type appState int

const (
	stateMenu appState = iota
	stateMovies
	stateBooking
	stateBookings
	stateCancel
	stateResult
)

// Booking flow prompt steps, in order
const (
	bookStepName = iota
	bookStepMovie
	bookStepShow
	bookStepSeats
	bookStepCoupon
	bookStepCount
)

var bookPrompts = [bookStepCount]string{
	"Enter your name",
	"Enter movie ID",
	"Enter show ID",
	"Enter seat numbers (comma separated, e.g. 1,2,3)",
	"Enter coupon code (optional, press Enter to skip)",
}

var menuItems = []string{
	"View All Movies",
	"Book Movie Tickets",
	"View Bookings",
	"Cancel Booking",
	"Quit",
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")).MarginBottom(1)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

type appModel struct {
	service *usecase.Service

	state  appState
	cursor int

	input    textinput.Model
	bookStep int
	answers  [bookStepCount]string

	output  string
	fromErr bool
}

func New(service *usecase.Service) tea.Model {
	input := textinput.New()
	input.CharLimit = 64

	return appModel{
		service: service,
		state:   stateMenu,
		input:   input,
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.state {
	case stateMenu:
		return m.updateMenu(keyMsg)
	case stateMovies, stateBookings, stateResult:
		// Any key returns to the menu
		m.state = stateMenu
		return m, nil
	case stateBooking:
		return m.updateBooking(keyMsg)
	case stateCancel:
		return m.updateCancel(keyMsg)
	}
	return m, nil
}

func (m appModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case "enter":
		switch m.cursor {
		case 0:
			m.output = m.renderMovies()
			m.state = stateMovies
		case 1:
			m.bookStep = bookStepName
			m.answers = [bookStepCount]string{}
			m.input = freshInput(bookPrompts[m.bookStep])
			m.state = stateBooking
		case 2:
			m.output = m.renderBookings()
			m.state = stateBookings
		case 3:
			m.input = freshInput("Enter booking ID to cancel")
			m.state = stateCancel
		case 4:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m appModel) updateBooking(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = stateMenu
		return m, nil
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		if value == "" && m.bookStep != bookStepCoupon {
			return m, nil
		}
		m.answers[m.bookStep] = value

		if m.bookStep < bookStepCoupon {
			m.bookStep++
			m.input = freshInput(bookPrompts[m.bookStep])
			return m, nil
		}

		m.output, m.fromErr = m.submitBooking()
		m.state = stateResult
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) updateCancel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = stateMenu
		return m, nil
	case tea.KeyEnter:
		m.output, m.fromErr = m.submitCancel(strings.TrimSpace(m.input.Value()))
		m.state = stateResult
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Movie Ticket Booking System"))
	b.WriteString("\n")

	switch m.state {
	case stateMenu:
		for i, item := range menuItems {
			if i == m.cursor {
				b.WriteString(cursorStyle.Render("> " + item))
			} else {
				b.WriteString("  " + item)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n" + dimStyle.Render("up/down to move, enter to select, q to quit"))

	case stateMovies, stateBookings:
		b.WriteString(m.output)
		b.WriteString("\n" + dimStyle.Render("press any key to return"))

	case stateBooking, stateCancel:
		if m.state == stateBooking {
			b.WriteString(m.renderMovies())
			b.WriteString("\n")
		}
		b.WriteString(m.input.View())
		b.WriteString("\n" + dimStyle.Render("enter to confirm, esc to go back"))

	case stateResult:
		if m.fromErr {
			b.WriteString(errorStyle.Render(m.output))
		} else {
			b.WriteString(okStyle.Render(m.output))
		}
		b.WriteString("\n\n" + dimStyle.Render("press any key to return"))
	}

	return b.String() + "\n"
}

func (m appModel) renderMovies() string {
	movies, err := m.service.Movie.GetMovies(context.Background())
	if err != nil {
		return errorStyle.Render("Error: " + err.Error())
	}
	if len(movies) == 0 {
		return "No movies available at the moment."
	}

	var b strings.Builder
	for _, movie := range movies {
		fmt.Fprintf(&b, "[%d] %s (%s, %d min)\n", movie.ID, movie.Title, movie.Genre, movie.Duration)
		for _, show := range movie.Shows {
			fmt.Fprintf(&b, "    show %d | %s | seats free %d/%d\n",
				show.ID, show.ShowTime, len(show.AvailableSeats), show.TotalSeats)
		}
	}
	return b.String()
}

func (m appModel) renderBookings() string {
	bookings, err := m.service.Booking.GetBookings(context.Background())
	if err != nil {
		return errorStyle.Render("Error: " + err.Error())
	}
	if len(bookings) == 0 {
		return "No bookings found."
	}

	var b strings.Builder
	for _, booking := range bookings {
		fmt.Fprintf(&b, "[%d] %s | %s @ %s | seats %s | total %.2f\n",
			booking.ID, booking.CustomerName, booking.MovieTitle, booking.ShowTime,
			utils.FormatSeats(booking.Seats), booking.TotalPrice)
	}
	return b.String()
}

func (m appModel) submitBooking() (string, bool) {
	movieID, err := strconv.Atoi(m.answers[bookStepMovie])
	if err != nil {
		return "Invalid movie ID: " + m.answers[bookStepMovie], true
	}
	showID, err := strconv.Atoi(m.answers[bookStepShow])
	if err != nil {
		return "Invalid show ID: " + m.answers[bookStepShow], true
	}
	seats, err := utils.ParseSeatList(m.answers[bookStepSeats])
	if err != nil {
		return "Invalid seat list: use numbers separated by commas", true
	}

	booking, err := m.service.Booking.CreateBooking(context.Background(), &request.CreateBookingRequest{
		MovieID:      movieID,
		ShowID:       showID,
		Seats:        seats,
		CustomerName: m.answers[bookStepName],
		CouponCode:   m.answers[bookStepCoupon],
	})
	if err != nil {
		return "Booking failed: " + err.Error(), true
	}

	return fmt.Sprintf("Booking successful!\nID: %d\nMovie: %s\nShow time: %s\nSeats: %s\nTotal price: %.2f",
		booking.ID, booking.MovieTitle, booking.ShowTime,
		utils.FormatSeats(booking.Seats), booking.TotalPrice), false
}

func (m appModel) submitCancel(raw string) (string, bool) {
	bookingID, err := strconv.Atoi(raw)
	if err != nil {
		return "Invalid booking ID: " + raw, true
	}

	if err := m.service.Booking.CancelBooking(context.Background(), bookingID); err != nil {
		return "Cancel failed: " + err.Error(), true
	}
	return fmt.Sprintf("Booking %d cancelled successfully!", bookingID), false
}

func freshInput(prompt string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt + ": "
	input.CharLimit = 64
	input.Focus()
	return input
}
