// Package xmclient is the entry point for building a Crossing Minds API
// client that implements the xminds.Client interface.
//
// New logs in immediately with the configured role and returns a client whose
// typed methods map one to one onto the API's logical operations:
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/xminds-client/pkg/xmclient"
//	  "github.com/fivetwenty-io/xminds-client/pkg/xminds"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := xmclient.New(ctx, &xminds.Config{
//	    Role:        xminds.RoleService,
//	    ServiceName: "recommender",
//	    Password:    "secret",
//	    DatabaseID:  "wSSZQbPxKvBrJ8GEmFJ6Fg",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  recs, err := cli.ListProfileBasedItemRecommendations(ctx, "user-1", nil)
//	  if err != nil { log.Fatal(err) }
//
//	  items, _ := recs.Field("items_id")
//	  log.Println(items)
//	}
//
// Operations can also be called by name, which is how the xminds CLI works:
//
//	recs, err := cli.Invoke(ctx, xminds.OpListSimilarItemRecommendations, xminds.Args{
//	  "item_id": "item-9",
//	  "amount":  5,
//	})
//
// # Environment
//
// Any field left empty in the Config is read from XMINDS_API_ENDPOINT,
// XMINDS_API_ROLE, XMINDS_API_EMAIL, XMINDS_API_PWD, XMINDS_API_SERVICE_NAME,
// XMINDS_API_DATABASE_ID, XMINDS_API_FRONTEND_USER_ID and
// XMINDS_API_FRONTEND_SESSION_ID. The endpoint defaults to
// https://api.crossingminds.com/ and the role to root.
//
// # Helpers
//
// NewRoot, NewIndividual and NewService cover the three login flows.
package xmclient
