package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/sirupsen/logrus"

	"github.com/charlie-ai-lab/personality-learn/internal/container"
	"github.com/charlie-ai-lab/personality-learn/internal/router"
)

func main() {
	ctx := context.Background()

	c, err := container.New(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize application")
	}
	defer c.Close()

	r := router.New(router.RouterConfig{
		IntentionHandler:  c.IntentionContainer.Handler,
		PlanHandler:       c.PlanContainer.Handler,
		ProgressHandler:   c.ProgressContainer.Handler,
		AssessmentHandler: c.AssessmentContainer.Handler,
	})

	// On Lambda the chi router is served through the API Gateway proxy;
	// anywhere else it listens on PORT directly.
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.New(r)
		lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			return adapter.ProxyWithContext(ctx, req)
		})
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logrus.Infof("personality-learn backend listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed")
	}
}
