package server

// appScript connects the page to its live session: it reports navigation
// and form submissions and applies the updates the server sends back.
const appScript = `(function () {
  const main = document.getElementById('main-content');
  const scheme = location.protocol === 'https:' ? 'wss:' : 'ws:';
  const ws = new WebSocket(scheme + '//' + location.host + '/ws/session');
  const fragment = () => location.hash.replace(/^#/, '');
  const icons = () => window.lucide && window.lucide.createIcons();
  const send = (msg) => {
    if (ws.readyState === WebSocket.OPEN) ws.send(JSON.stringify(msg));
  };

  ws.addEventListener('open', () => send({type: 'hello', fragment: fragment()}));
  ws.addEventListener('message', (ev) => {
    const msg = JSON.parse(ev.data);
    switch (msg.type) {
      case 'content':
        main.innerHTML = msg.markup || '';
        break;
      case 'active':
        document.querySelectorAll('.nav-link[data-view]').forEach((el) => {
          if (el.dataset.view === msg.view) el.classList.toggle('active', !!msg.active);
        });
        break;
      case 'region': {
        const el = document.getElementById(msg.id);
        if (el) {
          el.innerHTML = msg.markup || '';
          icons();
        }
        break;
      }
      case 'push-state':
        history.pushState(msg.state, '', msg.fragment);
        break;
      case 'icons':
        icons();
        break;
      case 'error':
        console.error('research desk:', msg.message);
        break;
    }
  });

  window.addEventListener('popstate', (ev) => {
    send({type: 'popstate', state: ev.state, fragment: fragment()});
  });

  document.addEventListener('click', (ev) => {
    const link = ev.target.closest('[data-view], [data-navigate]');
    if (!link) return;
    ev.preventDefault();
    send({type: 'navigate', view: link.dataset.view || link.dataset.navigate});
  });

  document.addEventListener('submit', (ev) => {
    const form = ev.target.closest('form[data-action]');
    if (!form) return;
    ev.preventDefault();
    const fields = {};
    new FormData(form).forEach((v, k) => { fields[k] = String(v); });
    send({type: 'action', name: form.dataset.action, fields: fields});
  });
})();
`
