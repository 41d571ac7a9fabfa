/*
Package broker implements an in-process publish/subscribe message broker with
two dispatch strategies and synchronous, in-order fan-out.

  - Relay: every message goes to every subscriber, in registration order.
  - Topic: a topic extractor maps each message to a topic key and only the
    subscribers registered under that key receive it.

Named, memoized dispatchers ("channels") live in the channels package.

# Usage

	relay := broker.NewRelay[Order]()
	sub, err := relay.Subscribe(func(o Order) {
	    fmt.Println("received", o.ID)
	})
	if err != nil {
	    return err
	}
	defer sub.Unsubscribe()

	if err := relay.Dispatch(Order{ID: "o-1"}); err != nil {
	    return err
	}

A topic dispatcher needs an extractor:

	orders, err := broker.NewTopic(func(o Order) string { return o.Status })
	if err != nil {
	    return err
	}
	_, _ = orders.Subscribe("paid", ship)
	_ = orders.Dispatch(Order{ID: "o-1", Status: "paid"}) // calls ship

# Delivery semantics

Dispatch runs every handler on the calling goroutine before it returns. The
subscriber list is snapshotted when Dispatch starts: handlers may subscribe or
unsubscribe (themselves or others) without disturbing the delivery in
progress, and every member of the snapshot is called exactly once.

Each handler receives its own deep copy of the message, produced by the
configured copier (copyx.Deep unless WithCopier says otherwise; messages that
implement copyx.Cloner copy themselves). A handler mutating its copy is never
observed by another handler or by the caller.

Absent messages are dropped silently: nil pointers, maps, slices and
interfaces, the empty string, numeric zero and false. Structs are always
delivered.

# Subscriptions

Subscription ids are unique for the life of the process: relay subscriptions
are named "sub-<n>", topic subscriptions "<topic>-<n>". Unsubscribing clears the
id and topic and makes further Unsubscribe calls no-ops. Dispatchers ignore
subscriptions that belong to another dispatcher.

# Errors

Invalid input is reported by the call that received it: ErrInvalidHandler,
ErrInvalidTopic, ErrMissingExtractor and ErrInvalidChannelName. Dispatch only
fails with ErrUncopyable, when the copier cannot copy the message. Handler
panics propagate to the caller of Dispatch.
*/
package broker
