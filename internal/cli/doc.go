// Parses flags and dispatches the recship pipeline commands.
//
// The tool accepts the following global flags:
//
//	-q, --quiet     Suppress informational output.
//	-v, --verbose   Enable debug output.
//	-c, --config    Path to the configuration file.
//
// Commands cover the pipeline stages: build (one platform), matrix (all
// platforms plus collection), collect (rehydrate staged artifacts),
// publish (registry upload), and resolve (print a target profile). Flags
// override build-time defaults set via linker flags. After parsing, the
// global log level is adjusted before the selected command runs.
package cli
