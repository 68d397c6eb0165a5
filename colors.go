package main

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	BulletStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).PaddingRight(1)
	TextStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	DimTextStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	ErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	SuccessStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	PhoneStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	BadgeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("236")).Padding(0, 1)
	KickerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	HeadlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	CreditStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	ControlStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("238")).Padding(0, 1)
	CTAStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("15")).Bold(true).Padding(0, 1)
)

// Backdrop blends, top to bottom.
var (
	GradientBackdrop = [2]string{"#1f2a44", "#0b0b0b"}
	ImageBackdrop    = [2]string{"#3a3128", "#0b0b0b"}
)
