package envelope

// Action is a dotted name from the closed catalog of browser operations.
// No action name is ever constructed dynamically; every outbound request
// frame's Action comes from one of these constants (spec invariant: every
// outbound action belongs to the closed catalog).
type Action string

const (
	ActionHistoryQuery      Action = "history.query"
	ActionHistoryRecent     Action = "history.recent"
	ActionHistoryDeleteItem Action = "history.delete_item"

	ActionTabsList               Action = "tabs.list"
	ActionTabsActive             Action = "tabs.active"
	ActionTabsCreate             Action = "tabs.create"
	ActionTabsClose              Action = "tabs.close"
	ActionTabsUpdate             Action = "tabs.update"
	ActionTabsSwitch             Action = "tabs.switch"
	ActionTabsCaptureScreenshot  Action = "tabs.capture_screenshot"

	ActionContentGetText      Action = "content.get_text"
	ActionContentGetHTML      Action = "content.get_html"
	ActionContentExecuteScript Action = "content.execute_script"

	ActionNavigationGoToURL Action = "navigation.go_to_url"
	ActionNavigationBack    Action = "navigation.back"
	ActionNavigationForward Action = "navigation.forward"
	ActionNavigationReload  Action = "navigation.reload"

	ActionBookmarksList         Action = "bookmarks.list"
	ActionBookmarksSearch       Action = "bookmarks.search"
	ActionBookmarksCreate       Action = "bookmarks.create"
	ActionBookmarksCreateFolder Action = "bookmarks.create_folder"
	ActionBookmarksUpdate       Action = "bookmarks.update"
	ActionBookmarksDelete       Action = "bookmarks.delete"

	ActionWindowsList        Action = "windows.list"
	ActionWindowsGet         Action = "windows.get"
	ActionWindowsGetCurrent  Action = "windows.get_current"
	ActionWindowsGetLastUsed Action = "windows.get_last_focused"
	ActionWindowsCreate      Action = "windows.create"
	ActionWindowsClose       Action = "windows.close"
	ActionWindowsFocus       Action = "windows.focus"
	ActionWindowsUpdate      Action = "windows.update"

	ActionRequestsStartMonitoring Action = "requests.start_monitoring"
	ActionRequestsStopMonitoring  Action = "requests.stop_monitoring"
	ActionRequestsListCaptured    Action = "requests.list_captured"
	ActionRequestsGetContent      Action = "requests.get_content"

	ActionPing Action = "ping"
)

// knownActions is the closed enumeration consulted to validate that an
// outbound action belongs to the catalog (spec §8 invariant 6). It is
// table-driven by design: adding a new action is a table edit here, not a
// new code path in the Dispatcher or WS Listener.
var knownActions = map[Action]bool{
	ActionHistoryQuery:      true,
	ActionHistoryRecent:     true,
	ActionHistoryDeleteItem: true,

	ActionTabsList:              true,
	ActionTabsActive:            true,
	ActionTabsCreate:            true,
	ActionTabsClose:             true,
	ActionTabsUpdate:            true,
	ActionTabsSwitch:            true,
	ActionTabsCaptureScreenshot: true,

	ActionContentGetText:       true,
	ActionContentGetHTML:       true,
	ActionContentExecuteScript: true,

	ActionNavigationGoToURL: true,
	ActionNavigationBack:    true,
	ActionNavigationForward: true,
	ActionNavigationReload:  true,

	ActionBookmarksList:         true,
	ActionBookmarksSearch:       true,
	ActionBookmarksCreate:       true,
	ActionBookmarksCreateFolder: true,
	ActionBookmarksUpdate:       true,
	ActionBookmarksDelete:       true,

	ActionWindowsList:        true,
	ActionWindowsGet:         true,
	ActionWindowsGetCurrent:  true,
	ActionWindowsGetLastUsed: true,
	ActionWindowsCreate:      true,
	ActionWindowsClose:       true,
	ActionWindowsFocus:       true,
	ActionWindowsUpdate:      true,

	ActionRequestsStartMonitoring: true,
	ActionRequestsStopMonitoring:  true,
	ActionRequestsListCaptured:    true,
	ActionRequestsGetContent:      true,

	ActionPing: true,
}

// IsKnown reports whether action belongs to the closed catalog.
func IsKnown(action Action) bool {
	return knownActions[action]
}
