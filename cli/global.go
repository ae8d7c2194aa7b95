package main

// <constants>
const existsErrMsg = `file '%s' already exists and --overwrite was not specified`
const configJSONErrMsg = `could not serialize config JSON: %s`
const resultJSONErrMsg = `could not serialize result JSON: %s`

// </constants>

// <global-variables>
//   <subset purpose="shared persistent flags, bound in main.go">
var argVerbose int
var argExcludePath []string
var argExcludePattern []string
var argStartWith string
var argStartAfter string
var argRelativeTo string
var argConfigFile string
var argConfigOutput bool
var argJSONOutput bool
var argOverwrite bool
var argLogFile string

//   </subset>

//   <subset purpose="passing values between cobra command callbacks">
var w Output
var log Output
var exitCode int
var cmdError error

//   </subset>
// </global-variables>
