// Copyright © 2026 The mpvedit authors

package catalog

// apiGroups lists the Lua scripting API: mp, mp.msg, mp.utils, mp.options
// and the common require snippets.
func apiGroups() []Group[APIEntry] {
	return []Group[APIEntry]{
		{Core, []APIEntry{
			// commands and properties
			{"mp.command", "mp.command(string)", "Run an mpv command string"},
			{"mp.commandv", "mp.commandv(arg1, arg2, ...)", "Run an mpv command with variadic args"},
			{"mp.command_native", "mp.command_native(table)", "Run an mpv command via native table"},
			{"mp.command_native_async", "mp.command_native_async(table, cb)", "Async mpv native command"},
			{"mp.abort_async_command", "mp.abort_async_command(id)", "Abort an async command"},
			{"mp.get_property", "mp.get_property(name [, def])", "Get property as string"},
			{"mp.get_property_osd", "mp.get_property_osd(name [, def])", "Get property formatted for OSD"},
			{"mp.get_property_bool", "mp.get_property_bool(name [, def])", "Get property as boolean"},
			{"mp.get_property_number", "mp.get_property_number(name [, def])", "Get property as number"},
			{"mp.get_property_native", "mp.get_property_native(name [, def])", "Get property as native Lua type"},
			{"mp.set_property", "mp.set_property(name, value)", "Set property from string"},
			{"mp.set_property_bool", "mp.set_property_bool(name, value)", "Set property from boolean"},
			{"mp.set_property_number", "mp.set_property_number(name, value)", "Set property from number"},
			{"mp.set_property_native", "mp.set_property_native(name, value)", "Set property from native value"},
			// property observers and event hooks
			{"mp.observe_property", "mp.observe_property(name, type, fn)", "Observe a property for changes"},
			{"mp.unobserve_property", "mp.unobserve_property(fn)", "Stop observing a property"},
			{"mp.register_event", "mp.register_event(name, fn)", "Register an event handler"},
			{"mp.unregister_event", "mp.unregister_event(fn)", "Unregister an event handler"},
			{"mp.register_idle", "mp.register_idle(fn)", "Register an idle callback"},
			{"mp.unregister_idle", "mp.unregister_idle(fn)", "Unregister an idle callback"},
			// key bindings
			{"mp.add_key_binding", "mp.add_key_binding(key, name, fn [, flags])", "Add a key binding"},
			{"mp.add_forced_key_binding", "mp.add_forced_key_binding(key, name, fn [, flags])", "Add forced key binding (overrides user)"},
			{"mp.remove_key_binding", "mp.remove_key_binding(name)", "Remove a key binding"},
			// osd and timers
			{"mp.osd_message", "mp.osd_message(text [, duration])", "Show OSD message"},
			{"mp.add_timeout", "mp.add_timeout(seconds, fn)", "One-shot timer"},
			{"mp.add_periodic_timer", "mp.add_periodic_timer(seconds, fn)", "Repeating timer"},
			// script environment
			{"mp.get_script_name", "mp.get_script_name()", "Get name of running script"},
			{"mp.get_script_directory", "mp.get_script_directory()", "Get directory of running script"},
			{"mp.get_time", "mp.get_time()", "Get monotonic time in seconds"},
			{"mp.enable_messages", "mp.enable_messages(level)", "Enable log message events at level"},
			{"mp.register_script_message", "mp.register_script_message(name, fn)", "Register handler for script messages"},
			{"mp.unregister_script_message", "mp.unregister_script_message(name)", "Unregister script message handler"},
			// input sections
			{"mp.input_enable_section", "mp.input_enable_section(name [, flags])", "Enable input section"},
			{"mp.input_disable_section", "mp.input_disable_section(name)", "Disable input section"},
			{"mp.input_define_section", "mp.input_define_section(name, contents [, flags])", "Define/update input section"},
			{"mp.create_osd_overlay", "mp.create_osd_overlay(format)", "Create ASS or text OSD overlay"},
			{"mp.get_osd_size", "mp.get_osd_size()", "Get OSD dimensions {w, h, aspect}"},
		}},
		{Log, []APIEntry{
			{"mp.msg.fatal", "mp.msg.fatal(...)", "Log fatal message"},
			{"mp.msg.error", "mp.msg.error(...)", "Log error message"},
			{"mp.msg.warn", "mp.msg.warn(...)", "Log warning message"},
			{"mp.msg.info", "mp.msg.info(...)", "Log info message"},
			{"mp.msg.verbose", "mp.msg.verbose(...)", "Log verbose message"},
			{"mp.msg.debug", "mp.msg.debug(...)", "Log debug message"},
			{"mp.msg.trace", "mp.msg.trace(...)", "Log trace message"},
		}},
		{Utility, []APIEntry{
			{"mp.utils.getcwd", "mp.utils.getcwd()", "Get current working directory"},
			{"mp.utils.readdir", "mp.utils.readdir(path [, filter])", "List directory contents"},
			{"mp.utils.file_info", "mp.utils.file_info(path)", "Get file info (size, type, dates)"},
			{"mp.utils.split_path", "mp.utils.split_path(path)", "Split into directory and filename"},
			{"mp.utils.join_path", "mp.utils.join_path(p1, p2)", "Join two path components"},
			{"mp.utils.subprocess", "mp.utils.subprocess(t)", "Run subprocess synchronously"},
			{"mp.utils.subprocess_detached", "mp.utils.subprocess_detached(t)", "Run subprocess detached"},
			{"mp.utils.getpid", "mp.utils.getpid()", "Get process ID"},
			{"mp.utils.parse_json", "mp.utils.parse_json(str)", "Parse JSON string to Lua table"},
			{"mp.utils.format_json", "mp.utils.format_json(v)", "Encode Lua value as JSON string"},
			{"mp.utils.to_string", "mp.utils.to_string(v)", "Convert value to readable string"},
			{"mp.utils.get_user_path", "mp.utils.get_user_path(path)", "Expand ~/ paths"},
		}},
		{OptionReader, []APIEntry{
			{"mp.options.read_options", "mp.options.read_options(table [, id [, on_update]])", "Read script options from config"},
		}},
		{Snippet, []APIEntry{
			{"require 'mp'", "require 'mp'", "Import MPV core module"},
			{"require 'mp.msg'", "require 'mp.msg'", "Import MPV logging module"},
			{"require 'mp.utils'", "require 'mp.utils'", "Import MPV utilities module"},
			{"require 'mp.options'", "require 'mp.options'", "Import MPV options module"},
			{"require 'mp.assdraw'", "require 'mp.assdraw'", "Import ASS drawing helpers"},
		}},
	}
}

// observableProperties are property names commonly passed to
// mp.observe_property and mp.get_property.
func observableProperties() []string {
	return []string{
		"path", "filename", "file-size", "stream-open-filename",
		"media-title", "duration", "time-pos", "time-remaining",
		"percent-pos", "playback-time", "chapter", "chapter-list",
		"playlist", "playlist-pos", "playlist-count", "pause",
		"idle-active", "core-idle", "seeking", "speed",
		"volume", "mute", "audio-delay", "sub-delay",
		"sub-visibility", "secondary-sub-visibility", "fullscreen", "window-minimized",
		"window-maximized", "ontop", "video-params", "video-out-params",
		"width", "height", "dwidth", "dheight",
		"osd-width", "osd-height", "track-list", "current-tracks",
		"hwdec-current", "estimated-vf-fps", "display-fps", "vsync-jitter",
		"video-bitrate", "audio-bitrate", "cache-speed", "demuxer-cache-duration",
		"demuxer-cache-state", "eof-reached",
	}
}
