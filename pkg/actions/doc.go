/*
Package actions implements the inbound command vocabulary of the back-end.

A command line has the form Name(arg1,arg2,...). Arguments are literal
strings and may be double-quoted to carry commas, parentheses or spaces.
ParseCommand decodes a line, a Table maps names to Actions and a
Dispatcher validates and runs them.

	table, err := actions.NewTable(actions.Builtins(env)...)
	d := actions.NewDispatcher(table, actions.WithTracer(tracer))
	res := d.Run(ctx, `Model("3279-4")`)
*/
package actions
