// Package chrome renders the visible feedback of the donor forms: inline
// field messages, the age display and eligibility banner, notifications,
// date helpers, the donation info panel and modals.
//
// Components are templ components and work both in full page renders and as
// Datastar element patches. SSEChrome drives them over an open event stream
// and also performs the browser-side actions (file download, clipboard
// copy, print view) through executed scripts. Timers such as the 5 second
// banner and the 3 second toast are scheduled client-side by those scripts.
//
// Recorder implements the same Chrome interface in memory.
//
// Styles is an explicitly constructed stylesheet registry. Blocks register
// once by name and the combined sheet is frozen on first use; pages either
// render Styles.Component in their layout or let SSEChrome.EnsureStyles
// inject it, which is a no-op when the page already carries it.
package chrome
