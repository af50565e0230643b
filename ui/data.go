package ui

// Attribute names of the contract between rendered markup and the client
// behavior script (static/js/behavior.js). Values are literal strings:
// booleans serialize as "true"/"false", delays and durations as
// millisecond integers, id lists comma-joined without spaces.
const (
	DataPosition      = "data-position"
	DataShowDelay     = "data-show-delay"
	DataHideDelay     = "data-hide-delay"
	DataClickable     = "data-clickable"
	DataTrigger       = "data-trigger"
	DataMultiple      = "data-multiple"
	DataCollapsible   = "data-collapsible"
	DataInitialOpen   = "data-initial-open"
	DataDuration      = "data-duration"
	DataDismissTarget = "data-dismiss-target"
)

// Trigger modes accepted by data-trigger.
const (
	TriggerClick = "click"
	TriggerHover = "hover"
)
