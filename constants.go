package main

type Mode int

const (
	ModeStartup Mode = iota
	ModeNormal
	ModeTextInput
	ModeProperties
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpExportJSON FileOperation = iota
	FileOpExportPNG
	FileOpImport
)

type ConfirmAction int

const (
	ConfirmDeleteBlock ConfirmAction = iota
	ConfirmDeleteZone
	ConfirmQuit
	ConfirmNewMap
	ConfirmOverwriteFile
)

// TextTarget names what a ModeTextInput commit applies to.
type TextTarget int

const (
	TargetMapName TextTarget = iota
	TargetExportName
	TargetSeatLabel
	TargetRowOverride
	TargetZoneName
	TargetBlockField
)

const (
	defaultRows      = 6
	defaultCols      = 10
	defaultSeatSize  = 32.0
	defaultGap       = 8.0
	defaultMapWidth  = 1600.0
	defaultMapHeight = 900.0
	defaultMapColor  = "#fafafa"

	minRowsCols = 1
	maxRowsCols = 100

	zoomMin  = 0.25
	zoomMax  = 4.0
	zoomStep = 1.1

	historyLimit = 50

	rotateStep = 15.0

	// Character cell dimensions (pixels per terminal cell). The document
	// lives in pixel space; the terminal projection divides by these.
	cellWidth  = 8.0
	cellHeight = 16.0
)

var zonePalette = []string{
	"#ef4444", "#f59e0b", "#10b981", "#3b82f6",
	"#8b5cf6", "#ec4899", "#14b8a6", "#f97316",
}
