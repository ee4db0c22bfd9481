/*
Package argx is home to argument handling packages that I want to share between CLI tools.

The main attraction is [github.com/saylorsolutions/argx/flagx], which binds command line tokens to typed variables.
It's deliberately small, and only concerns itself with turning a slice of tokens into values and leftover arguments.
Reading os.Args, opening files, and deciding exit codes are left to the calling program.
*/
package argx
