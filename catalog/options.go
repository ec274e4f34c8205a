// Copyright © 2026 The mpvedit authors

package catalog

// optionGroups lists the mpv.conf options offered for completion.
// See https://mpv.io/manual/master/ for the authoritative list.
func optionGroups() []Group[ConfigOption] {
	return []Group[ConfigOption]{
		{General, []ConfigOption{
			{"profile", "Use a configuration profile", ""},
			{"profile-desc", "Description for a profile", ""},
			{"profile-cond", "Conditional profile activation (Lua expression)", ""},
			{"profile-restore", "Restore options on profile deactivation", "default"},
			{"keep-open", "Keep player open after playback ends", "no"},
			{"keep-open-pause", "Pause when keep-open is active", "yes"},
			{"save-position-on-quit", "Save playback position on quit", "no"},
			{"watch-later-options", "Options to save in watch-later data", ""},
			{"fullscreen", "Start in fullscreen mode", "no"},
			{"fs", "Start in fullscreen mode (alias)", "no"},
			{"loop-file", "Loop the current file", "no"},
			{"loop-playlist", "Loop the playlist", "no"},
			{"loop", "Loop playback", "no"},
			{"shuffle", "Shuffle playlist", "no"},
			{"idle", "Stay open when no file is playing", "no"},
			{"input-default-bindings", "Enable default key bindings", "yes"},
			{"input-vo-keyboard", "Enable keyboard input on video window", "yes"},
			{"log-file", "Path to log file", ""},
			{"msg-level", "Set message level for modules", ""},
			{"term-osd-bar", "Show OSD bar in terminal", "no"},
			{"priority", "Process priority (Windows)", "normal"},
			{"load-scripts", "Load scripts from scripts directory", "yes"},
			{"ytdl", "Use yt-dlp for URL resolution", "yes"},
			{"ytdl-format", "yt-dlp format selection", ""},
			{"ytdl-raw-options", "Additional yt-dlp options", ""},
			{"script-opts", "Script option key=value pairs", ""},
			{"reset-on-next-file", "Reset options on next file", ""},
		}},
		{Video, []ConfigOption{
			{"vo", "Video output driver", "gpu"},
			{"gpu-api", "GPU API backend", "auto"},
			{"gpu-context", "GPU context backend", "auto"},
			{"hwdec", "Hardware decoding mode", "no"},
			{"hwdec-codecs", "Codecs to use hardware decoding for", "h264,vc1,hevc,vp8,vp9,av1"},
			{"vf", "Video filter chain", ""},
			{"video-sync", "Video sync mode", "audio"},
			{"video-aspect-override", "Override video aspect ratio", ""},
			{"video-rotate", "Rotate video (degrees)", "0"},
			{"video-zoom", "Video zoom factor", "0"},
			{"video-pan-x", "Video pan X offset", "0"},
			{"video-pan-y", "Video pan Y offset", "0"},
			{"video-align-x", "Video alignment X", "0"},
			{"video-align-y", "Video alignment Y", "0"},
			{"video-unscaled", "Display video at original resolution", "no"},
			{"deinterlace", "Enable deinterlacing", "no"},
			{"interpolation", "Enable frame interpolation", "no"},
			{"tscale", "Temporal scaling filter", "oversample"},
			{"scale", "Upscaling filter", "lanczos"},
			{"dscale", "Downscaling filter", ""},
			{"cscale", "Chroma scaling filter", ""},
			{"scale-antiring", "Anti-ringing for upscaling", "0"},
			{"correct-downscaling", "Enable correct downscaling", "no"},
			{"sigmoid-upscaling", "Enable sigmoid upscaling", "no"},
			{"linear-downscaling", "Enable linear downscaling", "yes"},
			{"linear-upscaling", "Enable linear upscaling", "no"},
			{"dither-depth", "Dither depth", "auto"},
			{"vd-queue-enable", "Enable video decoder queue", "no"},
			{"vd-lavc-threads", "Video decoder threads", "0"},
		}},
		{Audio, []ConfigOption{
			{"ao", "Audio output driver", "auto"},
			{"audio-device", "Audio output device", "auto"},
			{"volume", "Startup volume", "100"},
			{"volume-max", "Maximum amplified volume", "130"},
			{"mute", "Mute audio on startup", "no"},
			{"audio-channels", "Audio channel layout", "auto-safe"},
			{"audio-normalize-downmix", "Normalize when downmixing", "no"},
			{"af", "Audio filter chain", ""},
			{"audio-spdif", "Passthrough codecs via S/PDIF", ""},
			{"audio-exclusive", "Exclusive audio output mode", "no"},
			{"audio-file-auto", "Auto-load external audio files", "no"},
			{"audio-pitch-correction", "Pitch correction on speed change", "yes"},
			{"gapless-audio", "Gapless audio playback", "weak"},
			{"audio-display", "Display cover art", "attachment"},
			{"ad-queue-enable", "Enable audio decoder queue", "no"},
			{"alang", "Preferred audio languages", ""},
		}},
		{Subtitle, []ConfigOption{
			{"sub-auto", "Auto-load subtitles", "exact"},
			{"sub-file-paths", "Subtitle file search paths", ""},
			{"sub-font", "Subtitle font name", ""},
			{"sub-font-size", "Subtitle font size", "55"},
			{"sub-color", "Subtitle font color", "#FFFFFFFF"},
			{"sub-border-color", "Subtitle border color", "#FF000000"},
			{"sub-border-size", "Subtitle border size", "3"},
			{"sub-shadow-color", "Subtitle shadow color", "#80000000"},
			{"sub-shadow-offset", "Subtitle shadow offset", "0"},
			{"sub-back-color", "Subtitle background color", ""},
			{"sub-bold", "Bold subtitles", "no"},
			{"sub-italic", "Italic subtitles", "no"},
			{"sub-blur", "Subtitle blur", "0"},
			{"sub-margin-x", "Subtitle horizontal margin", "25"},
			{"sub-margin-y", "Subtitle vertical margin", "22"},
			{"sub-pos", "Subtitle vertical position (%)", "100"},
			{"sub-spacing", "Subtitle letter spacing", "0"},
			{"sub-ass-override", "Override ASS subtitle styles", "yes"},
			{"sub-ass-force-margins", "Force subtitle margins", "no"},
			{"sub-ass-force-style", "Force ASS style overrides", ""},
			{"sub-fix-timing", "Fix subtitle timing", "yes"},
			{"sub-delay", "Subtitle delay (seconds)", "0"},
			{"sub-visibility", "Show subtitles", "yes"},
			{"secondary-sub-visibility", "Show secondary subtitles", "no"},
			{"slang", "Preferred subtitle languages", ""},
			{"sub-scale", "Subtitle scale factor", "1"},
			{"sub-ass-vsfilter-blur-compat", "VSFilter blur compatibility", "yes"},
			{"sub-ass-scale-with-window", "Scale ASS subs with window", "yes"},
			{"secondary-sid", "Secondary subtitle track ID", "no"},
			{"sub-forced-events-only", "Only show forced subtitle events", "no"},
		}},
		{OSD, []ConfigOption{
			{"osd-level", "OSD display level (0-3)", "1"},
			{"osd-font", "OSD font name", ""},
			{"osd-font-size", "OSD font size", "55"},
			{"osd-color", "OSD text color", "#FFFFFFFF"},
			{"osd-border-color", "OSD border color", "#FF000000"},
			{"osd-border-size", "OSD border width", "3"},
			{"osd-shadow-color", "OSD shadow color", ""},
			{"osd-shadow-offset", "OSD shadow offset", "0"},
			{"osd-back-color", "OSD background color", ""},
			{"osd-bold", "Bold OSD text", "yes"},
			{"osd-italic", "Italic OSD text", "no"},
			{"osd-bar", "Show OSD seek bar", "yes"},
			{"osd-duration", "OSD message duration (ms)", "1000"},
			{"osd-on-seek", "OSD display on seek", "bar"},
			{"osd-bar-align-y", "OSD bar vertical alignment", "0.5"},
			{"osd-bar-w", "OSD bar width (%)", "75"},
			{"osd-bar-h", "OSD bar height (%)", "3.125"},
			{"osd-border-style", "OSD border style", "background-box"},
			{"osd-margin-x", "OSD horizontal margin", "25"},
			{"osd-margin-y", "OSD vertical margin", "22"},
		}},
		{Cache, []ConfigOption{
			{"cache", "Enable cache", "auto"},
			{"cache-secs", "Cache duration (seconds)", "10"},
			{"cache-on-disk", "Store cache on disk", "no"},
			{"cache-dir", "Cache directory path", ""},
			{"cache-pause", "Pause when cache is empty", "yes"},
			{"cache-pause-wait", "Wait time when cache is empty (s)", "1"},
			{"cache-pause-initial", "Pause initially to fill cache", "no"},
			{"demuxer-max-bytes", "Maximum demuxer cache bytes", "150MiB"},
			{"demuxer-max-back-bytes", "Maximum demuxer back-cache bytes", "50MiB"},
			{"demuxer-seekable-cache", "Enable seekable demuxer cache", "auto"},
			{"demuxer-readahead-secs", "Demuxer readahead duration (s)", "1"},
			{"demuxer-mkv-subtitle-preroll", "MKV subtitle preroll", "index"},
			{"demuxer-thread", "Enable threaded demuxing", "yes"},
		}},
		{HDR, []ConfigOption{
			{"target-colorspace-hint", "Signal HDR to display", "no"},
			{"target-trc", "Target transfer characteristics", "auto"},
			{"target-prim", "Target color primaries", "auto"},
			{"target-peak", "Target peak brightness (nits)", "auto"},
			{"tone-mapping", "Tone mapping algorithm", "auto"},
			{"tone-mapping-mode", "Tone mapping mode", "auto"},
			{"inverse-tone-mapping", "Enable inverse tone mapping", "no"},
			{"hdr-compute-peak", "Compute HDR peak per-frame", "auto"},
			{"hdr-peak-percentile", "HDR peak percentile", "99.995"},
			{"hdr-peak-decay-rate", "HDR peak decay rate", "20"},
			{"hdr-scene-threshold-low", "HDR scene change threshold low", "1"},
			{"hdr-scene-threshold-high", "HDR scene change threshold high", "3"},
			{"gamut-mapping-mode", "Gamut mapping mode", "auto"},
		}},
		{GPUBackend, []ConfigOption{
			{"vulkan-async-compute", "Enable async compute", "no"},
			{"vulkan-async-transfer", "Enable async transfer", "no"},
			{"vulkan-queue-count", "Number of Vulkan queues", "1"},
			{"vulkan-swap-mode", "Vulkan swap chain mode", "auto"},
			{"vulkan-device", "Vulkan device to use", ""},
		}},
		{Screenshot, []ConfigOption{
			{"screenshot-format", "Screenshot image format", "jpg"},
			{"screenshot-directory", "Screenshot save directory", ""},
			{"screenshot-template", "Screenshot filename template", "mpv-shot%n"},
			{"screenshot-tag-colorspace", "Tag screenshot colorspace", "no"},
			{"screenshot-jpeg-quality", "JPEG screenshot quality", "90"},
			{"screenshot-png-compression", "PNG screenshot compression", "7"},
			{"screenshot-webp-quality", "WebP screenshot quality", "75"},
			{"screenshot-webp-lossless", "Lossless WebP screenshots", "no"},
			{"screenshot-high-bit-depth", "High bit-depth screenshots", "yes"},
		}},
		{Window, []ConfigOption{
			{"geometry", "Window geometry / position", ""},
			{"autofit", "Maximum window size", ""},
			{"autofit-larger", "Maximum window size (limit large)", ""},
			{"autofit-smaller", "Minimum window size (expand small)", ""},
			{"window-scale", "Window scale factor", "1"},
			{"window-minimized", "Start minimized", "no"},
			{"window-maximized", "Start maximized", "no"},
			{"force-window", "Create window even without video", "no"},
			{"ontop", "Set window always on top", "no"},
			{"border", "Show window border", "yes"},
			{"title", "Window title", "${media-title}"},
			{"cursor-autohide", "Auto-hide cursor (ms)", "1000"},
			{"cursor-autohide-fs-only", "Auto-hide cursor in fullscreen only", "no"},
			{"snap-window", "Snap window to edges", "no"},
			{"hidpi-window-scale", "Scale window for HiDPI", "yes"},
			{"native-keyrepeat", "Use native key repeat", "no"},
		}},
		{Input, []ConfigOption{
			{"input-conf", "Path to input.conf for key bindings", ""},
			{"no-input-default-bindings", "Disable default key bindings", ""},
			{"input-ar-delay", "Auto-repeat delay (ms)", "200"},
			{"input-ar-rate", "Auto-repeat rate (per second)", "40"},
			{"input-cursor", "Enable cursor input", "yes"},
			{"input-right-alt-gr", "Right Alt is AltGr", "no"},
		}},
	}
}
