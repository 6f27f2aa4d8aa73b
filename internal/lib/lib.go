// Package lib groups supporting libraries that do not fit strictly into
// the request layers: background jobs on Redis/Asynq and the Resend email
// client they use.
package lib
