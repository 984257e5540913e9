/*
Package lifespan brackets a server launch with application-defined scoped
resources.

The application contributes an ordered list of managers, each either an
already-prepared hook or a factory that builds one from the application at
entry time. The Supervisor starts them in registration order, yields to the
launch strategy, and stops them in strict reverse order on every exit path —
normal return, launch failure, or partial startup. Managers with a
producer/consumer relationship (one opens a resource pool the next depends
on) are safe under this strict ordering.
*/
package lifespan
