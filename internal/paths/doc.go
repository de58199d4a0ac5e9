// Provides platform-appropriate paths for the pipeline.
//
// All paths follow XDG conventions on Linux and platform-native conventions
// on macOS and Windows. The vendor name "tracedeck" is used as the
// subdirectory under each base path.
package paths
